package services

import (
	"context"
	"time"

	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a new JWT access token for the owner.
	GenerateAccessToken(ctx context.Context, owner *domain.Owner) (string, time.Time, error)

	// GenerateRefreshToken creates a new opaque refresh token for the owner.
	GenerateRefreshToken(ctx context.Context, owner *domain.Owner) (string, time.Time, error)

	// ValidateAndParseRefreshToken validates a refresh token string against the
	// owner's stored token details and returns the owner when valid.
	ValidateAndParseRefreshToken(ctx context.Context, ownerID string, refreshTokenString string) (*domain.Owner, error)
}

// GoogleOAuthHandlerSvcFacade defines the interface for Google OAuth operations.
type GoogleOAuthHandlerSvcFacade interface {
	// GenerateStateString creates a secure random CSRF token for the OAuth flow.
	GenerateStateString(ctx context.Context) (string, error)
	// GetGoogleLoginURL returns the URL to redirect the user to for Google login.
	GetGoogleLoginURL(ctx context.Context, state string) string
	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo uses the access token to get user information from Google.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	// ValidateGoogleIDToken validates a Google ID token and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
