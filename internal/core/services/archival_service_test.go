package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffkhata/staffkhata_backend/internal/apperrors"
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	portssvc "github.com/staffkhata/staffkhata_backend/internal/core/ports/services"
	"github.com/staffkhata/staffkhata_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SnapshotRepository (based on ArchivalService usage) ---
type MockSnapshotRepository struct {
	mock.Mock
	FindSnapshotFn  func(ctx context.Context, ownerID string, employeeID string, month int, year int) (*domain.MonthlySnapshot, error)
	FindSnapshotsFn func(ctx context.Context, ownerID string, employeeID string) ([]domain.MonthlySnapshot, error)
	SealPeriodFn    func(ctx context.Context, snapshot domain.MonthlySnapshot) error
	RecordAnomalyFn func(ctx context.Context, anomaly domain.ArchivalAnomaly) error
}

func (m *MockSnapshotRepository) FindSnapshot(ctx context.Context, ownerID string, employeeID string, month int, year int) (*domain.MonthlySnapshot, error) {
	if m.FindSnapshotFn != nil {
		return m.FindSnapshotFn(ctx, ownerID, employeeID, month, year)
	}
	args := m.Called(ctx, ownerID, employeeID, month, year)
	var snapshot *domain.MonthlySnapshot
	if args.Get(0) != nil {
		snapshot = args.Get(0).(*domain.MonthlySnapshot)
	}
	return snapshot, args.Error(1)
}

func (m *MockSnapshotRepository) FindSnapshots(ctx context.Context, ownerID string, employeeID string) ([]domain.MonthlySnapshot, error) {
	if m.FindSnapshotsFn != nil {
		return m.FindSnapshotsFn(ctx, ownerID, employeeID)
	}
	args := m.Called(ctx, ownerID, employeeID)
	var snapshots []domain.MonthlySnapshot
	if args.Get(0) != nil {
		snapshots = args.Get(0).([]domain.MonthlySnapshot)
	}
	return snapshots, args.Error(1)
}

func (m *MockSnapshotRepository) SealPeriod(ctx context.Context, snapshot domain.MonthlySnapshot) error {
	if m.SealPeriodFn != nil {
		return m.SealPeriodFn(ctx, snapshot)
	}
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepository) RecordAnomaly(ctx context.Context, anomaly domain.ArchivalAnomaly) error {
	if m.RecordAnomalyFn != nil {
		return m.RecordAnomalyFn(ctx, anomaly)
	}
	args := m.Called(ctx, anomaly)
	return args.Error(0)
}

// --- Test Suite ---
type ArchivalServiceTestSuite struct {
	suite.Suite
	mockSnapshotRepo   *MockSnapshotRepository
	mockAttendanceRepo *MockAttendanceRepository
	mockEmployeeRepo   *MockEmployeeRepository
	shiftGuard         *services.ShiftGuard
	service            portssvc.ArchivalSvcFacade
	ownerID            string
	employeeID         string
	employee           *domain.Employee
}

func (suite *ArchivalServiceTestSuite) SetupTest() {
	suite.mockSnapshotRepo = new(MockSnapshotRepository)
	suite.mockAttendanceRepo = new(MockAttendanceRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.shiftGuard = services.NewShiftGuard()
	suite.service = services.NewArchivalService(
		suite.mockSnapshotRepo,
		suite.mockAttendanceRepo,
		suite.mockEmployeeRepo,
		suite.shiftGuard,
	)
	suite.ownerID = uuid.NewString()
	suite.employeeID = uuid.NewString()
	suite.employee = &domain.Employee{
		EmployeeID:   suite.employeeID,
		OwnerID:      suite.ownerID,
		Name:         "Ramesh",
		SalaryPerDay: decimal.NewFromInt(500),
	}
}

func (suite *ArchivalServiceTestSuite) openPeriodEntries() []domain.AttendanceEntry {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC) }
	return []domain.AttendanceEntry{
		{EntryID: uuid.NewString(), EntryDate: day(1), Status: domain.StatePresent, AmountTaken: decimal.Zero},
		{EntryID: uuid.NewString(), EntryDate: day(2), Status: domain.StateHalfDay, AmountTaken: decimal.NewFromInt(100)},
		{EntryID: uuid.NewString(), EntryDate: day(3), Status: domain.StateAbsent, AmountTaken: decimal.NewFromInt(50)},
	}
}

// --- Shift Tests ---
func (suite *ArchivalServiceTestSuite) TestShift_Success() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.ownerID, suite.employeeID).Return(suite.employee, nil).Once()
	suite.mockAttendanceRepo.On("FindOpenPeriod", ctx, suite.ownerID, suite.employeeID).Return(suite.openPeriodEntries(), nil).Once()
	suite.mockSnapshotRepo.On("FindSnapshot", ctx, suite.ownerID, suite.employeeID, 3, 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSnapshotRepo.On("SealPeriod", ctx, mock.MatchedBy(func(snapshot domain.MonthlySnapshot) bool {
		// wage 500: one present day + one half day = 750 earned, 150 taken
		return snapshot.OwnerID == suite.ownerID &&
			snapshot.EmployeeID == suite.employeeID &&
			snapshot.Month == 3 && snapshot.Year == 2025 &&
			snapshot.TotalPresent == 1 &&
			snapshot.TotalHalfDay == 1 &&
			snapshot.TotalAbsent == 1 &&
			snapshot.TotalEarnings.Equal(decimal.NewFromInt(750)) &&
			snapshot.TotalAmountTaken.Equal(decimal.NewFromInt(150)) &&
			snapshot.SnapshotID != ""
	})).Return(nil).Once()

	snapshot, err := suite.service.Shift(ctx, suite.ownerID, suite.employeeID, 3, 2025)

	suite.Require().NoError(err)
	suite.Require().NotNil(snapshot)
	suite.Equal(3, snapshot.Month)
	suite.Equal(2025, snapshot.Year)
	suite.True(snapshot.TotalEarnings.Equal(decimal.NewFromInt(750)))
	key := suite.ownerID + "/" + suite.employeeID
	suite.True(suite.shiftGuard.TryAcquire(key), "guard should be released after the shift")
	suite.shiftGuard.Release(key)
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
	suite.mockAttendanceRepo.AssertExpectations(suite.T())
}

func (suite *ArchivalServiceTestSuite) TestShift_InvalidMonth() {
	ctx := context.Background()

	snapshot, err := suite.service.Shift(ctx, suite.ownerID, suite.employeeID, 13, 2025)

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSnapshotRepo.AssertNotCalled(suite.T(), "SealPeriod", mock.Anything, mock.Anything)
}

func (suite *ArchivalServiceTestSuite) TestShift_EmployeeNotFound() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.ownerID, suite.employeeID).Return(nil, apperrors.ErrNotFound).Once()

	snapshot, err := suite.service.Shift(ctx, suite.ownerID, suite.employeeID, 3, 2025)

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSnapshotRepo.AssertNotCalled(suite.T(), "SealPeriod", mock.Anything, mock.Anything)
}

func (suite *ArchivalServiceTestSuite) TestShift_EmptyPeriod() {
	ctx := context.Background()
	var empty []domain.AttendanceEntry

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.ownerID, suite.employeeID).Return(suite.employee, nil).Once()
	suite.mockAttendanceRepo.On("FindOpenPeriod", ctx, suite.ownerID, suite.employeeID).Return(empty, nil).Once()

	snapshot, err := suite.service.Shift(ctx, suite.ownerID, suite.employeeID, 3, 2025)

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSnapshotRepo.AssertNotCalled(suite.T(), "SealPeriod", mock.Anything, mock.Anything)
}

func (suite *ArchivalServiceTestSuite) TestShift_PeriodAlreadySealed() {
	ctx := context.Background()
	existing := &domain.MonthlySnapshot{SnapshotID: uuid.NewString(), Month: 3, Year: 2025}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.ownerID, suite.employeeID).Return(suite.employee, nil).Once()
	suite.mockAttendanceRepo.On("FindOpenPeriod", ctx, suite.ownerID, suite.employeeID).Return(suite.openPeriodEntries(), nil).Once()
	suite.mockSnapshotRepo.On("FindSnapshot", ctx, suite.ownerID, suite.employeeID, 3, 2025).Return(existing, nil).Once()

	snapshot, err := suite.service.Shift(ctx, suite.ownerID, suite.employeeID, 3, 2025)

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockSnapshotRepo.AssertNotCalled(suite.T(), "SealPeriod", mock.Anything, mock.Anything)
}

func (suite *ArchivalServiceTestSuite) TestShift_SealRaceReturnsConflict() {
	ctx := context.Background()

	// Pre-check passed but the unique index caught a concurrent seal.
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.ownerID, suite.employeeID).Return(suite.employee, nil).Once()
	suite.mockAttendanceRepo.On("FindOpenPeriod", ctx, suite.ownerID, suite.employeeID).Return(suite.openPeriodEntries(), nil).Once()
	suite.mockSnapshotRepo.On("FindSnapshot", ctx, suite.ownerID, suite.employeeID, 3, 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSnapshotRepo.On("SealPeriod", ctx, mock.AnythingOfType("domain.MonthlySnapshot")).Return(apperrors.ErrConflict).Once()

	snapshot, err := suite.service.Shift(ctx, suite.ownerID, suite.employeeID, 3, 2025)

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func (suite *ArchivalServiceTestSuite) TestShift_GuardHeldReturnsShiftInProgress() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.ownerID, suite.employeeID).Return(suite.employee, nil).Once()

	key := suite.ownerID + "/" + suite.employeeID
	suite.Require().True(suite.shiftGuard.TryAcquire(key))
	defer suite.shiftGuard.Release(key)

	snapshot, err := suite.service.Shift(ctx, suite.ownerID, suite.employeeID, 3, 2025)

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrShiftInProgress)
	suite.mockAttendanceRepo.AssertNotCalled(suite.T(), "FindOpenPeriod", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ArchivalServiceTestSuite) TestShift_BlockedWhileUpsertInFlight() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.ownerID, suite.employeeID).Return(suite.employee, nil).Once()

	// An attendance write holds its token across the repository call; a seal
	// must not start inside that window.
	key := suite.ownerID + "/" + suite.employeeID
	suite.Require().True(suite.shiftGuard.TryAcquireShared(key))
	defer suite.shiftGuard.ReleaseShared(key)

	snapshot, err := suite.service.Shift(ctx, suite.ownerID, suite.employeeID, 3, 2025)

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrShiftInProgress)
	suite.mockAttendanceRepo.AssertNotCalled(suite.T(), "FindOpenPeriod", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ArchivalServiceTestSuite) TestShift_PartialArchivalFlagsAnomaly() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.ownerID, suite.employeeID).Return(suite.employee, nil).Once()
	suite.mockAttendanceRepo.On("FindOpenPeriod", ctx, suite.ownerID, suite.employeeID).Return(suite.openPeriodEntries(), nil).Once()
	suite.mockSnapshotRepo.On("FindSnapshot", ctx, suite.ownerID, suite.employeeID, 3, 2025).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSnapshotRepo.On("SealPeriod", ctx, mock.AnythingOfType("domain.MonthlySnapshot")).Return(apperrors.ErrPartialArchival).Once()
	suite.mockSnapshotRepo.On("RecordAnomaly", ctx, mock.MatchedBy(func(anomaly domain.ArchivalAnomaly) bool {
		return anomaly.OwnerID == suite.ownerID &&
			anomaly.EmployeeID == suite.employeeID &&
			anomaly.Month == 3 && anomaly.Year == 2025 &&
			anomaly.Detail != ""
	})).Return(nil).Once()

	snapshot, err := suite.service.Shift(ctx, suite.ownerID, suite.employeeID, 3, 2025)

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrPartialArchival)
	key := suite.ownerID + "/" + suite.employeeID
	suite.True(suite.shiftGuard.TryAcquire(key), "guard should be released after the failed shift")
	suite.shiftGuard.Release(key)
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func (suite *ArchivalServiceTestSuite) TestShift_GuardReleasedAfterFailure() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.ownerID, suite.employeeID).Return(suite.employee, nil).Twice()
	suite.mockAttendanceRepo.On("FindOpenPeriod", ctx, suite.ownerID, suite.employeeID).Return(nil, expectedErr).Once()

	_, err := suite.service.Shift(ctx, suite.ownerID, suite.employeeID, 3, 2025)
	suite.Require().Error(err)

	// Guard must be free again; a second shift reaches the repo.
	suite.mockAttendanceRepo.On("FindOpenPeriod", ctx, suite.ownerID, suite.employeeID).Return([]domain.AttendanceEntry{}, nil).Once()

	_, err = suite.service.Shift(ctx, suite.ownerID, suite.employeeID, 3, 2025)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAttendanceRepo.AssertExpectations(suite.T())
}

// --- GetSnapshot Tests ---
func (suite *ArchivalServiceTestSuite) TestGetSnapshot_Success() {
	ctx := context.Background()
	expected := &domain.MonthlySnapshot{SnapshotID: uuid.NewString(), Month: 2, Year: 2025}

	suite.mockSnapshotRepo.On("FindSnapshot", ctx, suite.ownerID, suite.employeeID, 2, 2025).Return(expected, nil).Once()

	snapshot, err := suite.service.GetSnapshot(ctx, suite.ownerID, suite.employeeID, 2, 2025)

	suite.Require().NoError(err)
	suite.Equal(expected, snapshot)
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func (suite *ArchivalServiceTestSuite) TestGetSnapshot_NotFound() {
	ctx := context.Background()

	suite.mockSnapshotRepo.On("FindSnapshot", ctx, suite.ownerID, suite.employeeID, 2, 2025).Return(nil, apperrors.ErrNotFound).Once()

	snapshot, err := suite.service.GetSnapshot(ctx, suite.ownerID, suite.employeeID, 2, 2025)

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

// --- ListSnapshots Tests ---
func (suite *ArchivalServiceTestSuite) TestListSnapshots_Success() {
	ctx := context.Background()
	expected := []domain.MonthlySnapshot{
		{SnapshotID: uuid.NewString(), Month: 3, Year: 2025},
		{SnapshotID: uuid.NewString(), Month: 2, Year: 2025},
	}

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.ownerID, suite.employeeID).Return(suite.employee, nil).Once()
	suite.mockSnapshotRepo.On("FindSnapshots", ctx, suite.ownerID, suite.employeeID).Return(expected, nil).Once()

	snapshots, err := suite.service.ListSnapshots(ctx, suite.ownerID, suite.employeeID)

	suite.Require().NoError(err)
	suite.Len(snapshots, 2)
	suite.mockSnapshotRepo.AssertExpectations(suite.T())
}

func (suite *ArchivalServiceTestSuite) TestListSnapshots_EmployeeNotFound() {
	ctx := context.Background()

	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.ownerID, suite.employeeID).Return(nil, apperrors.ErrNotFound).Once()

	snapshots, err := suite.service.ListSnapshots(ctx, suite.ownerID, suite.employeeID)

	suite.Require().Error(err)
	suite.Nil(snapshots)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSnapshotRepo.AssertNotCalled(suite.T(), "FindSnapshots", mock.Anything, mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestArchivalService(t *testing.T) {
	suite.Run(t, new(ArchivalServiceTestSuite))
}
