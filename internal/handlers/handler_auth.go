package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/gin-gonic/gin"
	"github.com/staffkhata/staffkhata_backend/internal/apperrors"
	portssvc "github.com/staffkhata/staffkhata_backend/internal/core/ports/services"
	"github.com/staffkhata/staffkhata_backend/internal/dto"
	"github.com/staffkhata/staffkhata_backend/internal/middleware"
	"github.com/staffkhata/staffkhata_backend/internal/platform/config"
	"github.com/staffkhata/staffkhata_backend/internal/utils"
)

// AuthHandler handles registration, login and token lifecycle requests.
type AuthHandler struct {
	ownerService portssvc.OwnerSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(ownerService portssvc.OwnerSvcFacade, tokenService portssvc.TokenSvcFacade, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		ownerService: ownerService,
		tokenService: tokenService,
		cfg:          cfg,
	}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services.Owner, services.TokenService, cfg)

	// 5 attempts per minute per IP on credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	limitMiddleware := middleware.RateLimit(limiter.New(store, rate))

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
	}

	registerGoogleOAuthRoutes(auth, cfg, services)
}

// issueTokens generates the access and refresh token pair, persists the
// refresh token hash and sets the refresh cookie.
func (h *AuthHandler) issueTokens(c *gin.Context, ownerID string) (*dto.LoginResponse, error) {
	ctx := c.Request.Context()

	owner, err := h.ownerService.GetOwnerByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, owner)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(ctx, owner)
	if err != nil {
		return nil, err
	}
	if err := h.ownerService.UpdateRefreshToken(ctx, owner.OwnerID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		return nil, err
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		refreshToken,
		int(h.cfg.RefreshTokenExpiryDuration.Seconds()),
		h.cfg.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction,
		true,
	)

	return &dto.LoginResponse{Token: accessToken, Owner: dto.ToOwnerResponse(owner)}, nil
}

// Register godoc
// @Summary Register a store owner
// @Description Creates a new store owner account and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterOwnerRequest true "Owner Registration Info"
// @Success 201 {object} dto.Response{data=dto.LoginResponse}
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response "Phone number already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	owner, err := h.ownerService.RegisterOwner(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			respondError(c, err, "Phone number already registered")
			return
		}
		respondError(c, err, "Failed to register owner")
		return
	}

	resp, err := h.issueTokens(c, owner.OwnerID)
	if err != nil {
		respondError(c, err, "Failed to generate tokens")
		return
	}
	c.JSON(http.StatusCreated, dto.OK(resp))
}

// Login godoc
// @Summary Owner login
// @Description Authenticates an owner with phone and password and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.Response{data=dto.LoginResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	owner, err := h.ownerService.AuthenticateOwner(c.Request.Context(), req.PhoneNumber, req.Password)
	if err != nil {
		respondError(c, err, "Invalid phone number or password")
		return
	}

	resp, err := h.issueTokens(c, owner.OwnerID)
	if err != nil {
		respondError(c, err, "Failed to generate tokens")
		return
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchanges the refresh token cookie for a fresh access token.
// @Tags auth
// @Produce json
// @Param ownerID query string true "Owner ID"
// @Success 200 {object} dto.Response{data=dto.RefreshTokenResponse}
// @Failure 401 {object} dto.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	refreshToken, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, dto.Fail("Refresh token missing"))
		return
	}

	ownerID := c.Query("ownerID")
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, dto.Fail("Owner ID required"))
		return
	}

	owner, err := h.tokenService.ValidateAndParseRefreshToken(ctx, ownerID, refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			respondError(c, err, "Refresh token expired, please log in again")
			return
		}
		respondError(c, err, "Invalid refresh token")
		return
	}

	accessToken, _, err := h.tokenService.GenerateAccessToken(ctx, owner)
	if err != nil {
		logger.Error("Failed to generate access token on refresh", slog.String("error", err.Error()))
		respondError(c, err, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.RefreshTokenResponse{Token: accessToken}))
}

// Logout godoc
// @Summary Owner logout
// @Description Invalidates the stored refresh token and clears the cookie.
// @Tags auth
// @Produce json
// @Param ownerID query string true "Owner ID"
// @Success 200 {object} dto.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	ownerID := c.Query("ownerID")
	if ownerID != "" {
		if err := h.ownerService.ClearRefreshToken(c.Request.Context(), ownerID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, err, "Failed to log out")
			return
		}
	}

	c.SetCookie(h.cfg.RefreshTokenCookieName, "", -1, h.cfg.RefreshTokenCookiePath, "", h.cfg.IsProduction, true)
	c.JSON(http.StatusOK, dto.OK(gin.H{"loggedOut": true}))
}
