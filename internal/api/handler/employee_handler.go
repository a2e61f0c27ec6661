package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/peoplehub/employee-api/internal/core/domain"
	"github.com/peoplehub/employee-api/internal/core/ports"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// EmployeeHandler handles HTTP requests for employee operations.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Create handles POST /employees.
//
// @Summary      Create a new employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  employeeResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), ports.CreateEmployeeInput{
		Name:        req.Name,
		Department:  req.Department,
		Salary:      req.Salary,
		JoiningDate: req.JoiningDate,
		Skills:      req.Skills,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toEmployeeResponse(created))
}

// Get handles GET /employees/:employee_id.
//
// @Summary      Get an employee by ID
// @Tags         employees
// @Produce      json
// @Param        employee_id  path      string  true  "Employee ID (e.g. E001)"
// @Success      200          {object}  employeeResponse
// @Failure      404          {object}  errorResponse
// @Router       /employees/{employee_id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	employee, err := h.service.Get(c.Request().Context(), c.Param("employee_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(employee))
}

// Update handles PUT /employees/:employee_id. Partial: only supplied fields
// change.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id  path      string                 true  "Employee ID"
// @Param        body         body      updateEmployeeRequest  true  "Fields to update"
// @Success      200          {object}  employeeResponse
// @Failure      401          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Failure      422          {object}  errorResponse
// @Router       /employees/{employee_id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("employee_id"), toPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(updated))
}

// Delete handles DELETE /employees/:employee_id.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        employee_id  path      string  true  "Employee ID"
// @Success      200          {object}  messageResponse
// @Failure      401          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /employees/{employee_id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	employeeID := c.Param("employee_id")
	if err := h.service.Delete(c.Request().Context(), employeeID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{
		Message: "Employee with ID " + employeeID + " deleted successfully",
	})
}

// List handles GET /employees. Without pagination parameters the response
// is a bare array; with them it is the {items, meta} envelope.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Param        department  query     string  false  "Filter by department"
// @Param        page        query     int     false  "Page number (1-based)"
// @Param        page_size   query     int     false  "Items per page (1-100)"
// @Success      200         {object}  paginatedEmployeesResponse
// @Failure      422         {object}  errorResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	pq, err := parsePageQuery(c)
	if err != nil {
		return err
	}

	input := ports.ListEmployeesInput{Department: c.QueryParam("department")}
	if pq.Requested {
		input.Page = &pq.Page
	}

	items, meta, err := h.service.List(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListPayload(items, meta))
}

// Search handles GET /employees/search. The skill query is matched as a
// case-insensitive substring against any element of the skills list.
//
// @Summary      Search employees by skill
// @Tags         employees
// @Produce      json
// @Param        skill      query     string  true   "Skill to search for"
// @Param        page       query     int     false  "Page number (1-based)"
// @Param        page_size  query     int     false  "Items per page (1-100)"
// @Success      200        {object}  paginatedEmployeesResponse
// @Failure      422        {object}  errorResponse
// @Router       /employees/search [get]
func (h *EmployeeHandler) Search(c echo.Context) error {
	skill := c.QueryParam("skill")
	if skill == "" {
		return domain.NewValidationError("skill query parameter is required")
	}

	pq, err := parsePageQuery(c)
	if err != nil {
		return err
	}

	input := ports.SearchBySkillInput{Skill: skill}
	if pq.Requested {
		input.Page = &pq.Page
	}

	items, meta, err := h.service.SearchBySkill(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toListPayload(items, meta))
}

// AverageSalary handles GET /employees/avg-salary.
//
// @Summary      Average salary by department
// @Tags         employees
// @Produce      json
// @Success      200  {array}  departmentAverageResponse
// @Router       /employees/avg-salary [get]
func (h *EmployeeHandler) AverageSalary(c echo.Context) error {
	rows, err := h.service.AverageSalaryByDepartment(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDepartmentAverages(rows))
}

// parsePageQuery reads the optional page/page_size query parameters.
// Supplying either one turns pagination on, with defaults for the other.
// Out-of-range values are rejected, not clamped.
func parsePageQuery(c echo.Context) (pageRequestFromQuery, error) {
	pageStr := c.QueryParam("page")
	sizeStr := c.QueryParam("page_size")
	if pageStr == "" && sizeStr == "" {
		return pageRequestFromQuery{}, nil
	}

	page := defaultPage
	if pageStr != "" {
		n, err := strconv.Atoi(pageStr)
		if err != nil || n < 1 {
			return pageRequestFromQuery{}, domain.NewValidationError("page must be a positive integer")
		}
		page = n
	}

	pageSize := defaultPageSize
	if sizeStr != "" {
		n, err := strconv.Atoi(sizeStr)
		if err != nil || n < 1 || n > maxPageSize {
			return pageRequestFromQuery{}, domain.NewValidationError("page_size must be between 1 and %d", maxPageSize)
		}
		pageSize = n
	}

	return pageRequestFromQuery{
		Requested: true,
		Page:      ports.PageRequest{Page: page, PageSize: pageSize},
	}, nil
}
