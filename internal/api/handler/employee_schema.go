package handler

import "github.com/peoplehub/employee-api/internal/core/ports"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createEmployeeRequest struct {
	Name        string   `json:"name"         validate:"required,max=100"`
	Department  string   `json:"department"   validate:"required,max=50"`
	Salary      float64  `json:"salary"       validate:"required,gt=0"`
	JoiningDate string   `json:"joining_date" validate:"required,datetime=2006-01-02"`
	Skills      []string `json:"skills"       validate:"required,min=1,dive,required"`
}

// updateEmployeeRequest carries a partial update: absent fields stay nil and
// leave the stored values unchanged.
type updateEmployeeRequest struct {
	Name        *string  `json:"name"         validate:"omitempty,min=1,max=100"`
	Department  *string  `json:"department"   validate:"omitempty,min=1,max=50"`
	Salary      *float64 `json:"salary"       validate:"omitempty,gt=0"`
	JoiningDate *string  `json:"joining_date" validate:"omitempty,datetime=2006-01-02"`
	Skills      []string `json:"skills"       validate:"omitempty,min=1,dive,required"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

type employeeResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Department  string   `json:"department"`
	Salary      float64  `json:"salary"`
	JoiningDate string   `json:"joining_date"`
	Skills      []string `json:"skills"`
}

type paginationMetaResponse struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

type paginatedEmployeesResponse struct {
	Items []employeeResponse     `json:"items"`
	Meta  paginationMetaResponse `json:"meta"`
}

type departmentAverageResponse struct {
	Department string  `json:"department"`
	AvgSalary  float64 `json:"avg_salary"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// pageRequestFromQuery holds parsed pagination query parameters.
// Requested is false when neither parameter was supplied, in which case the
// endpoints fall back to the unpaginated array response.
type pageRequestFromQuery struct {
	Requested bool
	Page      ports.PageRequest
}
