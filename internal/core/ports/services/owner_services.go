package services

import (
	"context"
	"time"

	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	"github.com/staffkhata/staffkhata_backend/internal/dto"
)

// OwnerReaderSvc defines read operations for store owner data
type OwnerReaderSvc interface {
	// GetOwnerByID retrieves an owner by ID.
	GetOwnerByID(ctx context.Context, ownerID string) (*domain.Owner, error)

	// GetOwnerByPhone retrieves an owner by phone number.
	GetOwnerByPhone(ctx context.Context, phoneNumber string) (*domain.Owner, error)
}

// OwnerWriterSvc defines write operations for store owner data
type OwnerWriterSvc interface {
	// RegisterOwner creates a new store owner account.
	RegisterOwner(ctx context.Context, req dto.RegisterOwnerRequest) (*domain.Owner, error)

	// UpdateOwner updates an existing owner's profile.
	UpdateOwner(ctx context.Context, ownerID string, req dto.UpdateOwnerRequest) (*domain.Owner, error)

	// UpdateRefreshToken updates the refresh token details for an owner.
	UpdateRefreshToken(ctx context.Context, ownerID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken clears the refresh token for an owner.
	ClearRefreshToken(ctx context.Context, ownerID string) error
}

// OwnerLifecycleSvc defines operations for managing owner lifecycle
type OwnerLifecycleSvc interface {
	// DeleteOwner marks an owner as deleted (soft delete).
	DeleteOwner(ctx context.Context, ownerID string) error
}

// OwnerAuthSvc defines operations for owner authentication
type OwnerAuthSvc interface {
	// AuthenticateOwner authenticates an owner with phone number and password.
	AuthenticateOwner(ctx context.Context, phoneNumber, password string) (*domain.Owner, error)

	// FindOrCreateOwnerFromGoogle provisions an owner from a verified Google
	// identity on first sign-in, or returns the existing linked owner.
	FindOrCreateOwnerFromGoogle(ctx context.Context, info *domain.GoogleUserInfo) (*domain.Owner, error)
}

// OwnerSvcFacade combines all owner-related service interfaces
type OwnerSvcFacade interface {
	OwnerReaderSvc
	OwnerWriterSvc
	OwnerLifecycleSvc
	OwnerAuthSvc
}
