package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffkhata/staffkhata_backend/internal/apperrors"
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	portsrepo "github.com/staffkhata/staffkhata_backend/internal/core/ports/repositories"
	"github.com/staffkhata/staffkhata_backend/internal/models"
	"github.com/staffkhata/staffkhata_backend/internal/utils/mapping"
)

type PgxOwnerRepository struct {
	BaseRepository
}

func newPgxOwnerRepository(db DB) portsrepo.OwnerRepositoryFacade {
	return &PgxOwnerRepository{BaseRepository{Pool: db}}
}

// Ensure PgxOwnerRepository implements portsrepo.OwnerRepositoryFacade
var _ portsrepo.OwnerRepositoryFacade = (*PgxOwnerRepository)(nil)

const ownerColumns = `owner_id, store_name, phone_number, email, password_hash, auth_provider, provider_user_id,
	refresh_token_hash, refresh_token_expiry_time, created_at, created_by, last_updated_at, last_updated_by, deleted_at`

func scanOwner(row pgx.Row) (*models.Owner, error) {
	var m models.Owner
	err := row.Scan(
		&m.OwnerID,
		&m.StoreName,
		&m.PhoneNumber,
		&m.Email,
		&m.PasswordHash,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, translateConnError(err)
	}
	return &m, nil
}

func (r *PgxOwnerRepository) SaveOwner(ctx context.Context, owner domain.Owner) error {
	m := mapping.ToModelOwner(owner)
	query := `
        INSERT INTO owners (owner_id, store_name, phone_number, email, password_hash, auth_provider, provider_user_id,
            created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.OwnerID,
		m.StoreName,
		m.PhoneNumber,
		m.Email,
		m.PasswordHash,
		m.AuthProvider,
		m.ProviderUserID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("owner already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save owner: %w", translateConnError(err))
	}
	return nil
}

func (r *PgxOwnerRepository) FindOwnerByID(ctx context.Context, ownerID string) (*domain.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners WHERE owner_id = $1 AND deleted_at IS NULL;`
	m, err := scanOwner(r.Pool.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find owner by ID %s: %w", ownerID, err)
	}
	owner := mapping.ToDomainOwner(*m)
	return &owner, nil
}

func (r *PgxOwnerRepository) FindOwnerByPhone(ctx context.Context, phoneNumber string) (*domain.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners WHERE phone_number = $1 AND deleted_at IS NULL;`
	m, err := scanOwner(r.Pool.QueryRow(ctx, query, phoneNumber))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find owner by phone: %w", err)
	}
	owner := mapping.ToDomainOwner(*m)
	return &owner, nil
}

func (r *PgxOwnerRepository) FindOwnerByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners WHERE auth_provider = $1 AND provider_user_id = $2 AND deleted_at IS NULL;`
	m, err := scanOwner(r.Pool.QueryRow(ctx, query, authProvider, providerUserID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find owner by provider details: %w", err)
	}
	owner := mapping.ToDomainOwner(*m)
	return &owner, nil
}

func (r *PgxOwnerRepository) UpdateOwner(ctx context.Context, owner domain.Owner) error {
	m := mapping.ToModelOwner(owner)
	query := `
        UPDATE owners
        SET store_name = $1, email = $2, last_updated_at = $3, last_updated_by = $4
        WHERE owner_id = $5 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.StoreName,
		m.Email,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.OwnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update owner: %w", translateConnError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("owner not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxOwnerRepository) UpdateRefreshToken(ctx context.Context, ownerID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	query := `
        UPDATE owners
        SET refresh_token_hash = $1, refresh_token_expiry_time = $2
        WHERE owner_id = $3 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, refreshTokenHash, refreshTokenExpiryTime, ownerID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", translateConnError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("owner not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxOwnerRepository) ClearRefreshToken(ctx context.Context, ownerID string) error {
	query := `
        UPDATE owners
        SET refresh_token_hash = NULL, refresh_token_expiry_time = NULL
        WHERE owner_id = $1 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, ownerID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", translateConnError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("owner not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxOwnerRepository) MarkOwnerDeleted(ctx context.Context, ownerID string, deletedAt time.Time) error {
	query := `
        UPDATE owners
        SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
        WHERE owner_id = $2 AND deleted_at IS NULL;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, deletedAt, ownerID)
	if err != nil {
		return fmt.Errorf("failed to mark owner as deleted: %w", translateConnError(err))
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("owner not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
