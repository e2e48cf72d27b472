package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"context"

	"github.com/google/uuid"
	"github.com/staffkhata/staffkhata_backend/internal/apperrors"
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	portsrepo "github.com/staffkhata/staffkhata_backend/internal/core/ports/repositories"
	portssvc "github.com/staffkhata/staffkhata_backend/internal/core/ports/services"
	"github.com/staffkhata/staffkhata_backend/internal/dto"
	"github.com/staffkhata/staffkhata_backend/internal/utils"
)

// ownerServiceImpl implements the OwnerSvcFacade interface
type ownerServiceImpl struct {
	BaseService
	ownerRepo portsrepo.OwnerRepositoryFacade
}

// NewOwnerService creates a new owner service backed by the given repository.
func NewOwnerService(repo portsrepo.OwnerRepositoryFacade) portssvc.OwnerSvcFacade {
	return &ownerServiceImpl{ownerRepo: repo}
}

// Ensure ownerServiceImpl implements the OwnerSvcFacade interface
var _ portssvc.OwnerSvcFacade = (*ownerServiceImpl)(nil)

func (s *ownerServiceImpl) RegisterOwner(ctx context.Context, req dto.RegisterOwnerRequest) (*domain.Owner, error) {
	if req.StoreName == "" || req.PhoneNumber == "" {
		return nil, fmt.Errorf("store name and phone number are required: %w", apperrors.ErrValidation)
	}

	existing, err := s.ownerRepo.FindOwnerByPhone(ctx, req.PhoneNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check for existing owner")
		return nil, fmt.Errorf("failed to check for existing owner: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("owner with phone number %s already exists: %w", req.PhoneNumber, apperrors.ErrDuplicate)
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	newOwnerID := uuid.NewString()
	owner := domain.Owner{
		OwnerID:      newOwnerID,
		StoreName:    req.StoreName,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: passwordHash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newOwnerID,
			LastUpdatedAt: now,
			LastUpdatedBy: newOwnerID,
		},
	}

	if err := s.ownerRepo.SaveOwner(ctx, owner); err != nil {
		s.LogError(ctx, err, "Failed to save owner")
		return nil, fmt.Errorf("failed to register owner: %w", err)
	}

	s.LogInfo(ctx, "Owner registered", slog.String("owner_id", owner.OwnerID))
	return &owner, nil
}

func (s *ownerServiceImpl) GetOwnerByID(ctx context.Context, ownerID string) (*domain.Owner, error) {
	owner, err := s.ownerRepo.FindOwnerByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner by ID: %w", err)
	}
	return owner, nil
}

func (s *ownerServiceImpl) GetOwnerByPhone(ctx context.Context, phoneNumber string) (*domain.Owner, error) {
	owner, err := s.ownerRepo.FindOwnerByPhone(ctx, phoneNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner by phone: %w", err)
	}
	return owner, nil
}

func (s *ownerServiceImpl) UpdateOwner(ctx context.Context, ownerID string, req dto.UpdateOwnerRequest) (*domain.Owner, error) {
	owner, err := s.ownerRepo.FindOwnerByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find owner for update: %w", err)
	}

	if req.StoreName != nil {
		if *req.StoreName == "" {
			return nil, fmt.Errorf("store name cannot be empty: %w", apperrors.ErrValidation)
		}
		owner.StoreName = *req.StoreName
	}
	if req.Email != nil {
		owner.Email = *req.Email
	}
	owner.LastUpdatedAt = time.Now()
	owner.LastUpdatedBy = ownerID

	if err := s.ownerRepo.UpdateOwner(ctx, *owner); err != nil {
		s.LogError(ctx, err, "Failed to update owner", slog.String("owner_id", ownerID))
		return nil, fmt.Errorf("failed to update owner: %w", err)
	}
	return owner, nil
}

func (s *ownerServiceImpl) UpdateRefreshToken(ctx context.Context, ownerID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.ownerRepo.UpdateRefreshToken(ctx, ownerID, refreshTokenHash, refreshTokenExpiryTime); err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	return nil
}

func (s *ownerServiceImpl) ClearRefreshToken(ctx context.Context, ownerID string) error {
	if err := s.ownerRepo.ClearRefreshToken(ctx, ownerID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

func (s *ownerServiceImpl) DeleteOwner(ctx context.Context, ownerID string) error {
	if err := s.ownerRepo.MarkOwnerDeleted(ctx, ownerID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to mark owner deleted", slog.String("owner_id", ownerID))
		return fmt.Errorf("failed to delete owner: %w", err)
	}
	return nil
}

// AuthenticateOwner verifies phone + password credentials. It returns
// ErrUnauthorized for both unknown phone numbers and wrong passwords so the
// response does not leak which part failed.
func (s *ownerServiceImpl) AuthenticateOwner(ctx context.Context, phoneNumber, password string) (*domain.Owner, error) {
	owner, err := s.ownerRepo.FindOwnerByPhone(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up owner for authentication: %w", err)
	}
	if owner.PasswordHash == "" || !utils.CheckPasswordHash(password, owner.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return owner, nil
}

func (s *ownerServiceImpl) FindOrCreateOwnerFromGoogle(ctx context.Context, info *domain.GoogleUserInfo) (*domain.Owner, error) {
	if info == nil || info.ID == "" {
		return nil, fmt.Errorf("google user info missing subject: %w", apperrors.ErrValidation)
	}

	owner, err := s.ownerRepo.FindOwnerByProviderDetails(ctx, string(domain.ProviderGoogle), info.ID)
	if err == nil {
		return owner, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up owner by provider details: %w", err)
	}

	now := time.Now()
	newOwnerID := uuid.NewString()
	storeName := info.Name
	if storeName == "" {
		storeName = info.Email
	}
	newOwner := domain.Owner{
		OwnerID:        newOwnerID,
		StoreName:      storeName,
		PhoneNumber:    "google:" + info.ID, // No phone from Google; keep the unique login slot occupied.
		Email:          info.Email,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: info.ID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newOwnerID,
			LastUpdatedAt: now,
			LastUpdatedBy: newOwnerID,
		},
	}

	if err := s.ownerRepo.SaveOwner(ctx, newOwner); err != nil {
		s.LogError(ctx, err, "Failed to provision owner from Google sign-in")
		return nil, fmt.Errorf("failed to provision owner from google sign-in: %w", err)
	}

	s.LogInfo(ctx, "Owner provisioned via Google sign-in", slog.String("owner_id", newOwner.OwnerID))
	return &newOwner, nil
}
