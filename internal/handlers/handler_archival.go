package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/staffkhata/staffkhata_backend/internal/core/ports/services"
	"github.com/staffkhata/staffkhata_backend/internal/dto"
)

// ArchivalHandler handles shift-to-history and snapshot retrieval requests.
type ArchivalHandler struct {
	archivalService portssvc.ArchivalSvcFacade
}

// NewArchivalHandler creates a new ArchivalHandler.
func NewArchivalHandler(archivalService portssvc.ArchivalSvcFacade) *ArchivalHandler {
	return &ArchivalHandler{archivalService: archivalService}
}

// registerArchivalRoutes sets up the shift and snapshot routes nested under
// an employee.
func registerArchivalRoutes(rg *gin.RouterGroup, archivalService portssvc.ArchivalSvcFacade) {
	h := NewArchivalHandler(archivalService)
	rg.POST("/:employeeID/shift", h.Shift)
	snapshots := rg.Group("/:employeeID/snapshots")
	{
		snapshots.GET("", h.ListSnapshots)
		snapshots.GET("/:month/:year", h.GetSnapshot)
	}
}

// Shift godoc
// @Summary Seal the open period
// @Description Archives the employee's open period into an immutable monthly snapshot and starts a fresh period.
// @Tags archival
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param shift body dto.ShiftRequest true "Target Month"
// @Success 201 {object} dto.Response{data=dto.SnapshotResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response "No entries to archive"
// @Failure 409 {object} dto.Response "Month already sealed"
// @Failure 423 {object} dto.Response "Shift in progress"
// @Security BearerAuth
// @Router /employees/{employeeID}/shift [post]
func (h *ArchivalHandler) Shift(c *gin.Context) {
	ownerID, ok := ownerIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	snapshot, err := h.archivalService.Shift(c.Request.Context(), ownerID, c.Param("employeeID"), req.Month, req.Year)
	if err != nil {
		respondError(c, err, "Failed to shift attendance to history")
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToSnapshotResponse(snapshot)))
}

// ListSnapshots godoc
// @Summary List sealed months
// @Description Returns the employee's archived monthly snapshots, newest first.
// @Tags archival
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.Response{data=dto.ListSnapshotsResponse}
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /employees/{employeeID}/snapshots [get]
func (h *ArchivalHandler) ListSnapshots(c *gin.Context) {
	ownerID, ok := ownerIDOrAbort(c)
	if !ok {
		return
	}

	snapshots, err := h.archivalService.ListSnapshots(c.Request.Context(), ownerID, c.Param("employeeID"))
	if err != nil {
		respondError(c, err, "Failed to list snapshots")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListSnapshotsResponse(snapshots)))
}

// GetSnapshot godoc
// @Summary Get a sealed month
// @Description Returns one archived monthly snapshot.
// @Tags archival
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param month path int true "Month (1-12)"
// @Param year path int true "Year"
// @Success 200 {object} dto.Response{data=dto.SnapshotResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /employees/{employeeID}/snapshots/{month}/{year} [get]
func (h *ArchivalHandler) GetSnapshot(c *gin.Context) {
	ownerID, ok := ownerIDOrAbort(c)
	if !ok {
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid year"))
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid month"))
		return
	}

	snapshot, err := h.archivalService.GetSnapshot(c.Request.Context(), ownerID, c.Param("employeeID"), month, year)
	if err != nil {
		respondError(c, err, "Snapshot not found")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSnapshotResponse(snapshot)))
}
