package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/staffkhata/staffkhata_backend/internal/core/ports/services"
	"github.com/staffkhata/staffkhata_backend/internal/dto"
)

// AttendanceHandler handles open-period attendance requests.
type AttendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService portssvc.AttendanceSvcFacade) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// registerAttendanceRoutes sets up the attendance routes nested under an
// employee.
func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := NewAttendanceHandler(attendanceService)
	attendance := rg.Group("/:employeeID/attendance")
	{
		attendance.POST("", h.UpsertEntry)
		attendance.GET("", h.ListOpenPeriod)
		attendance.GET("/totals", h.GetTotals)
	}
}

// UpsertEntry godoc
// @Summary Record a day's attendance
// @Description Records or overwrites one calendar day's attendance for an employee.
// @Tags attendance
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param entry body dto.UpsertAttendanceRequest true "Attendance Entry"
// @Success 200 {object} dto.Response{data=dto.AttendanceEntryResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Failure 423 {object} dto.Response "Shift in progress"
// @Security BearerAuth
// @Router /employees/{employeeID}/attendance [post]
func (h *AttendanceHandler) UpsertEntry(c *gin.Context) {
	ownerID, ok := ownerIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpsertAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	entry, err := h.attendanceService.UpsertEntry(c.Request.Context(), ownerID, c.Param("employeeID"), req)
	if err != nil {
		respondError(c, err, "Failed to record attendance")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToAttendanceEntryResponse(entry)))
}

// ListOpenPeriod godoc
// @Summary List open-period attendance
// @Description Returns the employee's unarchived attendance entries, oldest first.
// @Tags attendance
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.Response{data=dto.ListAttendanceResponse}
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /employees/{employeeID}/attendance [get]
func (h *AttendanceHandler) ListOpenPeriod(c *gin.Context) {
	ownerID, ok := ownerIDOrAbort(c)
	if !ok {
		return
	}

	entries, err := h.attendanceService.ListOpenPeriod(c.Request.Context(), ownerID, c.Param("employeeID"))
	if err != nil {
		respondError(c, err, "Failed to list attendance")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListAttendanceResponse(entries)))
}

// GetTotals godoc
// @Summary Get open-period totals
// @Description Returns the live aggregate of the employee's open period at the current daily wage.
// @Tags attendance
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.Response{data=dto.TotalsResponse}
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /employees/{employeeID}/attendance/totals [get]
func (h *AttendanceHandler) GetTotals(c *gin.Context) {
	ownerID, ok := ownerIDOrAbort(c)
	if !ok {
		return
	}

	totals, err := h.attendanceService.GetOpenPeriodTotals(c.Request.Context(), ownerID, c.Param("employeeID"))
	if err != nil {
		respondError(c, err, "Failed to compute totals")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToTotalsResponse(*totals)))
}
