package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/staffkhata/staffkhata_backend/internal/core/ports/services"
	"github.com/staffkhata/staffkhata_backend/internal/dto"
)

// OwnerHandler handles the authenticated owner's profile requests.
type OwnerHandler struct {
	ownerService portssvc.OwnerSvcFacade
}

// NewOwnerHandler creates a new OwnerHandler.
func NewOwnerHandler(ownerService portssvc.OwnerSvcFacade) *OwnerHandler {
	return &OwnerHandler{ownerService: ownerService}
}

// registerOwnerRoutes sets up the owner profile routes.
func registerOwnerRoutes(rg *gin.RouterGroup, ownerService portssvc.OwnerSvcFacade) {
	h := NewOwnerHandler(ownerService)
	owner := rg.Group("/owner")
	{
		owner.GET("", h.GetOwner)
		owner.PUT("", h.UpdateOwner)
		owner.DELETE("", h.DeleteOwner)
	}
}

// GetOwner godoc
// @Summary Get own profile
// @Description Returns the authenticated owner's profile.
// @Tags owner
// @Produce json
// @Success 200 {object} dto.Response{data=dto.OwnerResponse}
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /owner [get]
func (h *OwnerHandler) GetOwner(c *gin.Context) {
	ownerID, ok := ownerIDOrAbort(c)
	if !ok {
		return
	}

	owner, err := h.ownerService.GetOwnerByID(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err, "Owner not found")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToOwnerResponse(owner)))
}

// UpdateOwner godoc
// @Summary Update own profile
// @Description Updates the authenticated owner's store name or email.
// @Tags owner
// @Accept json
// @Produce json
// @Param owner body dto.UpdateOwnerRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.OwnerResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /owner [put]
func (h *OwnerHandler) UpdateOwner(c *gin.Context) {
	ownerID, ok := ownerIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	owner, err := h.ownerService.UpdateOwner(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, err, "Failed to update owner")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToOwnerResponse(owner)))
}

// DeleteOwner godoc
// @Summary Delete own account
// @Description Soft deletes the authenticated owner's account.
// @Tags owner
// @Produce json
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /owner [delete]
func (h *OwnerHandler) DeleteOwner(c *gin.Context) {
	ownerID, ok := ownerIDOrAbort(c)
	if !ok {
		return
	}

	if err := h.ownerService.DeleteOwner(c.Request.Context(), ownerID); err != nil {
		respondError(c, err, "Failed to delete owner")
		return
	}
	c.JSON(http.StatusOK, dto.OK(gin.H{"deleted": true}))
}
