package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/staffkhata/staffkhata_backend/internal/apperrors"
	"github.com/staffkhata/staffkhata_backend/internal/core/domain"
	portssvc "github.com/staffkhata/staffkhata_backend/internal/core/ports/services"
	"github.com/staffkhata/staffkhata_backend/internal/dto"
	"github.com/staffkhata/staffkhata_backend/internal/handlers"
	"github.com/staffkhata/staffkhata_backend/internal/middleware"
)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) CreateEmployee(ctx context.Context, ownerID string, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) GetEmployeeByID(ctx context.Context, ownerID string, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, ownerID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) ListEmployees(ctx context.Context, ownerID string) ([]domain.Employee, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, ownerID string, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, ownerID, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, ownerID string, employeeID string) error {
	args := m.Called(ctx, ownerID, employeeID)
	return args.Error(0)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock AttendanceService ---
type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) UpsertEntry(ctx context.Context, ownerID string, employeeID string, req dto.UpsertAttendanceRequest) (*domain.AttendanceEntry, error) {
	args := m.Called(ctx, ownerID, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceEntry), args.Error(1)
}
func (m *MockAttendanceService) ListOpenPeriod(ctx context.Context, ownerID string, employeeID string) ([]domain.AttendanceEntry, error) {
	args := m.Called(ctx, ownerID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceEntry), args.Error(1)
}
func (m *MockAttendanceService) GetOpenPeriodTotals(ctx context.Context, ownerID string, employeeID string) (*domain.AttendanceTotals, error) {
	args := m.Called(ctx, ownerID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceTotals), args.Error(1)
}

var _ portssvc.AttendanceSvcFacade = (*MockAttendanceService)(nil)

// --- Mock ArchivalService ---
type MockArchivalService struct {
	mock.Mock
}

func (m *MockArchivalService) Shift(ctx context.Context, ownerID string, employeeID string, month int, year int) (*domain.MonthlySnapshot, error) {
	args := m.Called(ctx, ownerID, employeeID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySnapshot), args.Error(1)
}
func (m *MockArchivalService) GetSnapshot(ctx context.Context, ownerID string, employeeID string, month int, year int) (*domain.MonthlySnapshot, error) {
	args := m.Called(ctx, ownerID, employeeID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySnapshot), args.Error(1)
}
func (m *MockArchivalService) ListSnapshots(ctx context.Context, ownerID string, employeeID string) ([]domain.MonthlySnapshot, error) {
	args := m.Called(ctx, ownerID, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlySnapshot), args.Error(1)
}

var _ portssvc.ArchivalSvcFacade = (*MockArchivalService)(nil)

// --- Test Suite ---
type EmployeeHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockEmployeeService   *MockEmployeeService
	mockAttendanceService *MockAttendanceService
	mockArchivalService   *MockArchivalService
	jwtSecret             string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *EmployeeHandlerTestSuite) generateTestToken(ownerID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "skb-test",
		Subject:   ownerID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *EmployeeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		suite.Require().NoError(dto.RegisterCustomValidations(v))
	}

	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockEmployeeService = new(MockEmployeeService)
	suite.mockAttendanceService = new(MockAttendanceService)
	suite.mockArchivalService = new(MockArchivalService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterEmployeeRoutes(v1, &portssvc.ServiceContainer{
		Employee:   suite.mockEmployeeService,
		Attendance: suite.mockAttendanceService,
		Archival:   suite.mockArchivalService,
	})
}

// do sends a JSON request through the router with a valid bearer token.
func (suite *EmployeeHandlerTestSuite) do(method, url, ownerID string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(ownerID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *EmployeeHandlerTestSuite) TestCreateEmployee_Success() {
	ownerID := uuid.NewString()
	req := dto.CreateEmployeeRequest{Name: "Ramesh", SalaryPerDay: decimal.NewFromInt(500)}
	created := &domain.Employee{
		EmployeeID:   uuid.NewString(),
		OwnerID:      ownerID,
		Name:         req.Name,
		SalaryPerDay: req.SalaryPerDay,
	}

	suite.mockEmployeeService.On("CreateEmployee",
		mock.Anything,
		ownerID,
		mock.MatchedBy(func(r dto.CreateEmployeeRequest) bool {
			return r.Name == "Ramesh" && r.SalaryPerDay.Equal(decimal.NewFromInt(500))
		}),
	).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/employees", ownerID, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp struct {
		Success bool                 `json:"success"`
		Data    dto.EmployeeResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(created.EmployeeID, resp.Data.EmployeeID)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestCreateEmployee_MissingName() {
	ownerID := uuid.NewString()

	w := suite.do(http.MethodPost, "/api/v1/employees", ownerID, gin.H{"salaryPerDay": "500"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEmployeeService.AssertNotCalled(suite.T(), "CreateEmployee")
}

func (suite *EmployeeHandlerTestSuite) TestGetEmployee_NotFound() {
	ownerID := uuid.NewString()
	employeeID := uuid.NewString()

	suite.mockEmployeeService.On("GetEmployeeByID", mock.Anything, ownerID, employeeID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/employees/"+employeeID, ownerID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockEmployeeService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestGetEmployee_RequiresToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/employees/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockEmployeeService.AssertNotCalled(suite.T(), "GetEmployeeByID")
}

func (suite *EmployeeHandlerTestSuite) TestUpsertAttendance_Success() {
	ownerID := uuid.NewString()
	employeeID := uuid.NewString()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	entry := &domain.AttendanceEntry{
		EntryID:     uuid.NewString(),
		OwnerID:     ownerID,
		EmployeeID:  employeeID,
		EntryDate:   day,
		Status:      domain.StatePresent,
		AmountTaken: decimal.NewFromInt(100),
	}

	suite.mockAttendanceService.On("UpsertEntry",
		mock.Anything,
		ownerID,
		employeeID,
		mock.MatchedBy(func(r dto.UpsertAttendanceRequest) bool {
			return r.Status == string(domain.StatePresent) && r.AmountTaken.Equal(decimal.NewFromInt(100))
		}),
	).Return(entry, nil).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/employees/%s/attendance", employeeID), ownerID, gin.H{
		"date":        day.Format(time.RFC3339),
		"status":      "PRESENT",
		"amountTaken": "100",
	})

	suite.Equal(http.StatusOK, w.Code)
	var resp struct {
		Data dto.AttendanceEntryResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2025-03-10", resp.Data.Date)
	suite.mockAttendanceService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestUpsertAttendance_UnknownStatusRejected() {
	ownerID := uuid.NewString()
	employeeID := uuid.NewString()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/employees/%s/attendance", employeeID), ownerID, gin.H{
		"date":   time.Now().UTC().Format(time.RFC3339),
		"status": "ON_LEAVE",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAttendanceService.AssertNotCalled(suite.T(), "UpsertEntry")
}

func (suite *EmployeeHandlerTestSuite) TestShift_LockedWhileInProgress() {
	ownerID := uuid.NewString()
	employeeID := uuid.NewString()

	suite.mockArchivalService.On("Shift", mock.Anything, ownerID, employeeID, 3, 2025).
		Return(nil, apperrors.ErrShiftInProgress).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/employees/%s/shift", employeeID), ownerID, gin.H{
		"month": 3,
		"year":  2025,
	})

	suite.Equal(http.StatusLocked, w.Code)
	suite.mockArchivalService.AssertExpectations(suite.T())
}

func (suite *EmployeeHandlerTestSuite) TestShift_AlreadySealedConflict() {
	ownerID := uuid.NewString()
	employeeID := uuid.NewString()

	suite.mockArchivalService.On("Shift", mock.Anything, ownerID, employeeID, 2, 2025).
		Return(nil, apperrors.ErrConflict).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/employees/%s/shift", employeeID), ownerID, gin.H{
		"month": 2,
		"year":  2025,
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockArchivalService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestEmployeeHandler(t *testing.T) {
	suite.Run(t, new(EmployeeHandlerTestSuite))
}
