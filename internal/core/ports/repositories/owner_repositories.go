package repositories

import (
	"context"
	"time"

	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
)

// OwnerReader defines read operations for store owner data
type OwnerReader interface {
	// FindOwnerByID retrieves a specific owner by their ID.
	FindOwnerByID(ctx context.Context, ownerID string) (*domain.Owner, error)

	// FindOwnerByPhone retrieves an owner by their phone number (login identifier).
	FindOwnerByPhone(ctx context.Context, phoneNumber string) (*domain.Owner, error)

	// FindOwnerByProviderDetails retrieves an owner by external auth provider identity.
	FindOwnerByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.Owner, error)
}

// OwnerWriter defines write operations for store owner data
type OwnerWriter interface {
	// SaveOwner persists a new owner.
	SaveOwner(ctx context.Context, owner domain.Owner) error

	// UpdateOwner updates an existing owner's details.
	UpdateOwner(ctx context.Context, owner domain.Owner) error

	// UpdateRefreshToken stores the hash and expiry of a newly issued refresh token.
	UpdateRefreshToken(ctx context.Context, ownerID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error

	// ClearRefreshToken removes the stored refresh token for an owner.
	ClearRefreshToken(ctx context.Context, ownerID string) error
}

// OwnerLifecycleManager defines operations for managing owner lifecycle
type OwnerLifecycleManager interface {
	// MarkOwnerDeleted marks an owner as deleted (soft delete).
	MarkOwnerDeleted(ctx context.Context, ownerID string, deletedAt time.Time) error
}

// OwnerRepositoryFacade combines all owner-related repository interfaces
type OwnerRepositoryFacade interface {
	OwnerReader
	OwnerWriter
	OwnerLifecycleManager
}
