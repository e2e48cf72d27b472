package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/staffkhata/staffkhata_backend/internal/core/ports/services"
	"github.com/staffkhata/staffkhata_backend/internal/dto"
)

// EmployeeHandler handles employee CRUD requests scoped to the
// authenticated owner.
type EmployeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService portssvc.EmployeeSvcFacade) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

// RegisterEmployeeRoutes sets up the employee routes together with their
// nested attendance and snapshot routes.
func RegisterEmployeeRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := NewEmployeeHandler(services.Employee)
	employees := rg.Group("/employees")
	{
		employees.POST("", h.CreateEmployee)
		employees.GET("", h.ListEmployees)
		employees.GET("/:employeeID", h.GetEmployee)
		employees.PUT("/:employeeID", h.UpdateEmployee)
		employees.DELETE("/:employeeID", h.DeleteEmployee)
	}

	registerAttendanceRoutes(employees, services.Attendance)
	registerArchivalRoutes(employees, services.Archival)
}

// CreateEmployee godoc
// @Summary Register an employee
// @Description Adds a new employee to the authenticated owner's store.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee Info"
// @Success 201 {object} dto.Response{data=dto.EmployeeResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	ownerID, ok := ownerIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), ownerID, req)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToEmployeeResponse(employee)))
}

// ListEmployees godoc
// @Summary List employees
// @Description Returns all of the authenticated owner's employees.
// @Tags employees
// @Produce json
// @Success 200 {object} dto.Response{data=dto.ListEmployeesResponse}
// @Failure 401 {object} dto.Response
// @Security BearerAuth
// @Router /employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	ownerID, ok := ownerIDOrAbort(c)
	if !ok {
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListEmployeesResponse(employees)))
}

// GetEmployee godoc
// @Summary Get an employee
// @Description Returns one employee belonging to the authenticated owner.
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.Response{data=dto.EmployeeResponse}
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /employees/{employeeID} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	ownerID, ok := ownerIDOrAbort(c)
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), ownerID, c.Param("employeeID"))
	if err != nil {
		respondError(c, err, "Employee not found")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToEmployeeResponse(employee)))
}

// UpdateEmployee godoc
// @Summary Update an employee
// @Description Updates an employee's name or daily wage. Wage changes affect future calculations only.
// @Tags employees
// @Accept json
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.EmployeeResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /employees/{employeeID} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	ownerID, ok := ownerIDOrAbort(c)
	if !ok {
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), ownerID, c.Param("employeeID"), req)
	if err != nil {
		respondError(c, err, "Failed to update employee")
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToEmployeeResponse(employee)))
}

// DeleteEmployee godoc
// @Summary Delete an employee
// @Description Removes an employee along with their attendance entries and sealed snapshots.
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /employees/{employeeID} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	ownerID, ok := ownerIDOrAbort(c)
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), ownerID, c.Param("employeeID")); err != nil {
		respondError(c, err, "Failed to delete employee")
		return
	}
	c.JSON(http.StatusOK, dto.OK(gin.H{"deleted": true}))
}
