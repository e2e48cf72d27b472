package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/staffkhata/staffkhata_backend/internal/apperrors"
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	portssvc "github.com/staffkhata/staffkhata_backend/internal/core/ports/services"
	"github.com/staffkhata/staffkhata_backend/internal/core/services"
	"github.com/staffkhata/staffkhata_backend/internal/dto"
	"github.com/staffkhata/staffkhata_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock OwnerRepository (based on OwnerService usage) ---
type MockOwnerRepository struct {
	mock.Mock
	FindOwnerByIDFn              func(ctx context.Context, ownerID string) (*domain.Owner, error)
	FindOwnerByPhoneFn           func(ctx context.Context, phoneNumber string) (*domain.Owner, error)
	FindOwnerByProviderDetailsFn func(ctx context.Context, authProvider string, providerUserID string) (*domain.Owner, error)
	SaveOwnerFn                  func(ctx context.Context, owner domain.Owner) error
	UpdateOwnerFn                func(ctx context.Context, owner domain.Owner) error
	UpdateRefreshTokenFn         func(ctx context.Context, ownerID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error
	ClearRefreshTokenFn          func(ctx context.Context, ownerID string) error
	MarkOwnerDeletedFn           func(ctx context.Context, ownerID string, deletedAt time.Time) error
}

func (m *MockOwnerRepository) FindOwnerByID(ctx context.Context, ownerID string) (*domain.Owner, error) {
	if m.FindOwnerByIDFn != nil {
		return m.FindOwnerByIDFn(ctx, ownerID)
	}
	args := m.Called(ctx, ownerID)
	var owner *domain.Owner
	if args.Get(0) != nil {
		owner = args.Get(0).(*domain.Owner)
	}
	return owner, args.Error(1)
}

func (m *MockOwnerRepository) FindOwnerByPhone(ctx context.Context, phoneNumber string) (*domain.Owner, error) {
	if m.FindOwnerByPhoneFn != nil {
		return m.FindOwnerByPhoneFn(ctx, phoneNumber)
	}
	args := m.Called(ctx, phoneNumber)
	var owner *domain.Owner
	if args.Get(0) != nil {
		owner = args.Get(0).(*domain.Owner)
	}
	return owner, args.Error(1)
}

func (m *MockOwnerRepository) FindOwnerByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*domain.Owner, error) {
	if m.FindOwnerByProviderDetailsFn != nil {
		return m.FindOwnerByProviderDetailsFn(ctx, authProvider, providerUserID)
	}
	args := m.Called(ctx, authProvider, providerUserID)
	var owner *domain.Owner
	if args.Get(0) != nil {
		owner = args.Get(0).(*domain.Owner)
	}
	return owner, args.Error(1)
}

func (m *MockOwnerRepository) SaveOwner(ctx context.Context, owner domain.Owner) error {
	if m.SaveOwnerFn != nil {
		return m.SaveOwnerFn(ctx, owner)
	}
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func (m *MockOwnerRepository) UpdateOwner(ctx context.Context, owner domain.Owner) error {
	if m.UpdateOwnerFn != nil {
		return m.UpdateOwnerFn(ctx, owner)
	}
	args := m.Called(ctx, owner)
	return args.Error(0)
}

func (m *MockOwnerRepository) UpdateRefreshToken(ctx context.Context, ownerID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if m.UpdateRefreshTokenFn != nil {
		return m.UpdateRefreshTokenFn(ctx, ownerID, refreshTokenHash, refreshTokenExpiryTime)
	}
	args := m.Called(ctx, ownerID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockOwnerRepository) ClearRefreshToken(ctx context.Context, ownerID string) error {
	if m.ClearRefreshTokenFn != nil {
		return m.ClearRefreshTokenFn(ctx, ownerID)
	}
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

func (m *MockOwnerRepository) MarkOwnerDeleted(ctx context.Context, ownerID string, deletedAt time.Time) error {
	if m.MarkOwnerDeletedFn != nil {
		return m.MarkOwnerDeletedFn(ctx, ownerID, deletedAt)
	}
	args := m.Called(ctx, ownerID, deletedAt)
	return args.Error(0)
}

// --- Test Suite ---
type OwnerServiceTestSuite struct {
	suite.Suite
	mockOwnerRepo *MockOwnerRepository
	service       portssvc.OwnerSvcFacade
}

func (suite *OwnerServiceTestSuite) SetupTest() {
	suite.mockOwnerRepo = new(MockOwnerRepository)
	suite.service = services.NewOwnerService(suite.mockOwnerRepo)
}

// --- RegisterOwner Tests ---
func (suite *OwnerServiceTestSuite) TestRegisterOwner_Success() {
	ctx := context.Background()
	req := dto.RegisterOwnerRequest{
		StoreName:   "Sharma General Store",
		PhoneNumber: "+919800000001",
		Password:    "secret123",
	}

	suite.mockOwnerRepo.On("FindOwnerByPhone", ctx, req.PhoneNumber).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockOwnerRepo.On("SaveOwner", ctx, mock.MatchedBy(func(owner domain.Owner) bool {
		return owner.StoreName == req.StoreName &&
			owner.PhoneNumber == req.PhoneNumber &&
			owner.PasswordHash != "" && owner.PasswordHash != req.Password &&
			owner.AuthProvider == domain.ProviderLocal
	})).Return(nil).Once()

	owner, err := suite.service.RegisterOwner(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(owner)
	suite.NotEmpty(owner.OwnerID)
	suite.Equal(req.StoreName, owner.StoreName)
	suite.NotEqual(req.Password, owner.PasswordHash)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

func (suite *OwnerServiceTestSuite) TestRegisterOwner_DuplicatePhone() {
	ctx := context.Background()
	req := dto.RegisterOwnerRequest{
		StoreName:   "Sharma General Store",
		PhoneNumber: "+919800000001",
		Password:    "secret123",
	}
	existing := &domain.Owner{OwnerID: uuid.NewString(), PhoneNumber: req.PhoneNumber}

	suite.mockOwnerRepo.On("FindOwnerByPhone", ctx, req.PhoneNumber).Return(existing, nil).Once()

	owner, err := suite.service.RegisterOwner(ctx, req)

	suite.Require().Error(err)
	suite.Nil(owner)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockOwnerRepo.AssertNotCalled(suite.T(), "SaveOwner", mock.Anything, mock.Anything)
}

func (suite *OwnerServiceTestSuite) TestRegisterOwner_MissingFields() {
	ctx := context.Background()
	req := dto.RegisterOwnerRequest{StoreName: "", PhoneNumber: "", Password: "secret123"}

	owner, err := suite.service.RegisterOwner(ctx, req)

	suite.Require().Error(err)
	suite.Nil(owner)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- AuthenticateOwner Tests ---
func (suite *OwnerServiceTestSuite) TestAuthenticateOwner_Success() {
	ctx := context.Background()
	password := "secret123"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	existing := &domain.Owner{
		OwnerID:      uuid.NewString(),
		PhoneNumber:  "+919800000001",
		PasswordHash: hash,
	}

	suite.mockOwnerRepo.On("FindOwnerByPhone", ctx, existing.PhoneNumber).Return(existing, nil).Once()

	owner, err := suite.service.AuthenticateOwner(ctx, existing.PhoneNumber, password)

	suite.Require().NoError(err)
	suite.Equal(existing.OwnerID, owner.OwnerID)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

func (suite *OwnerServiceTestSuite) TestAuthenticateOwner_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-password")
	suite.Require().NoError(err)
	existing := &domain.Owner{
		OwnerID:      uuid.NewString(),
		PhoneNumber:  "+919800000001",
		PasswordHash: hash,
	}

	suite.mockOwnerRepo.On("FindOwnerByPhone", ctx, existing.PhoneNumber).Return(existing, nil).Once()

	owner, err := suite.service.AuthenticateOwner(ctx, existing.PhoneNumber, "wrong-password")

	suite.Require().Error(err)
	suite.Nil(owner)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

func (suite *OwnerServiceTestSuite) TestAuthenticateOwner_UnknownPhone() {
	ctx := context.Background()

	suite.mockOwnerRepo.On("FindOwnerByPhone", ctx, "+919800000099").Return(nil, apperrors.ErrNotFound).Once()

	owner, err := suite.service.AuthenticateOwner(ctx, "+919800000099", "whatever")

	suite.Require().Error(err)
	suite.Nil(owner)
	// Same error as wrong password so the response does not leak which failed.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

// --- GetOwnerByID Tests ---
func (suite *OwnerServiceTestSuite) TestGetOwnerByID_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	expected := &domain.Owner{OwnerID: ownerID, StoreName: "Found Store"}

	suite.mockOwnerRepo.On("FindOwnerByID", ctx, ownerID).Return(expected, nil).Once()

	owner, err := suite.service.GetOwnerByID(ctx, ownerID)

	suite.Require().NoError(err)
	suite.Equal(expected, owner)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

func (suite *OwnerServiceTestSuite) TestGetOwnerByID_NotFound() {
	ctx := context.Background()
	ownerID := uuid.NewString()

	suite.mockOwnerRepo.On("FindOwnerByID", ctx, ownerID).Return(nil, apperrors.ErrNotFound).Once()

	owner, err := suite.service.GetOwnerByID(ctx, ownerID)

	suite.Require().Error(err)
	suite.Nil(owner)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

// --- UpdateOwner Tests ---
func (suite *OwnerServiceTestSuite) TestUpdateOwner_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	newName := "Renamed Store"
	req := dto.UpdateOwnerRequest{StoreName: &newName}
	existing := &domain.Owner{OwnerID: ownerID, StoreName: "Old Store"}

	suite.mockOwnerRepo.On("FindOwnerByID", ctx, ownerID).Return(existing, nil).Once()
	suite.mockOwnerRepo.On("UpdateOwner", ctx, mock.MatchedBy(func(owner domain.Owner) bool {
		return owner.StoreName == newName
	})).Return(nil).Once()

	owner, err := suite.service.UpdateOwner(ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.Equal(newName, owner.StoreName)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

// --- Refresh token bookkeeping ---
func (suite *OwnerServiceTestSuite) TestUpdateRefreshToken() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	expiry := time.Now().Add(7 * 24 * time.Hour)

	suite.mockOwnerRepo.On("UpdateRefreshToken", ctx, ownerID, "somehash", expiry).Return(nil).Once()

	err := suite.service.UpdateRefreshToken(ctx, ownerID, "somehash", expiry)

	suite.Require().NoError(err)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

func (suite *OwnerServiceTestSuite) TestClearRefreshToken_RepoError() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockOwnerRepo.On("ClearRefreshToken", ctx, ownerID).Return(expectedErr).Once()

	err := suite.service.ClearRefreshToken(ctx, ownerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

// --- DeleteOwner Tests ---
func (suite *OwnerServiceTestSuite) TestDeleteOwner_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()

	suite.mockOwnerRepo.On("MarkOwnerDeleted", ctx, ownerID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.DeleteOwner(ctx, ownerID)

	suite.Require().NoError(err)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

// --- FindOrCreateOwnerFromGoogle Tests ---
func (suite *OwnerServiceTestSuite) TestFindOrCreateOwnerFromGoogle_ExistingOwner() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{ID: "google-sub-1", Email: "owner@example.com", Name: "Owner"}
	existing := &domain.Owner{OwnerID: uuid.NewString(), AuthProvider: domain.ProviderGoogle, ProviderUserID: info.ID}

	suite.mockOwnerRepo.On("FindOwnerByProviderDetails", ctx, string(domain.ProviderGoogle), info.ID).Return(existing, nil).Once()

	owner, err := suite.service.FindOrCreateOwnerFromGoogle(ctx, info)

	suite.Require().NoError(err)
	suite.Equal(existing.OwnerID, owner.OwnerID)
	suite.mockOwnerRepo.AssertNotCalled(suite.T(), "SaveOwner", mock.Anything, mock.Anything)
}

func (suite *OwnerServiceTestSuite) TestFindOrCreateOwnerFromGoogle_NewOwner() {
	ctx := context.Background()
	info := &domain.GoogleUserInfo{ID: "google-sub-2", Email: "new@example.com", Name: "New Owner"}

	suite.mockOwnerRepo.On("FindOwnerByProviderDetails", ctx, string(domain.ProviderGoogle), info.ID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockOwnerRepo.On("SaveOwner", ctx, mock.MatchedBy(func(owner domain.Owner) bool {
		return owner.AuthProvider == domain.ProviderGoogle &&
			owner.ProviderUserID == info.ID &&
			owner.Email == info.Email &&
			owner.PasswordHash == ""
	})).Return(nil).Once()

	owner, err := suite.service.FindOrCreateOwnerFromGoogle(ctx, info)

	suite.Require().NoError(err)
	suite.Require().NotNil(owner)
	suite.Equal(domain.ProviderGoogle, owner.AuthProvider)
	suite.mockOwnerRepo.AssertExpectations(suite.T())
}

func (suite *OwnerServiceTestSuite) TestFindOrCreateOwnerFromGoogle_MissingSubject() {
	ctx := context.Background()

	owner, err := suite.service.FindOrCreateOwnerFromGoogle(ctx, &domain.GoogleUserInfo{})

	suite.Require().Error(err)
	suite.Nil(owner)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- Run Suite ---
func TestOwnerService(t *testing.T) {
	suite.Run(t, new(OwnerServiceTestSuite))
}
