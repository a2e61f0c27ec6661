package ports

import (
	"context"

	"github.com/peoplehub/employee-api/internal/core/domain"
)

// CreateEmployeeInput carries all data needed to create a new employee.
// The identifier is allocated by the service, never supplied by the caller.
type CreateEmployeeInput struct {
	Name        string
	Department  string
	Salary      float64
	JoiningDate string
	Skills      []string
}

// PageRequest is an explicit request for a page of results.
type PageRequest struct {
	Page     int // 1-based
	PageSize int // 1..100, enforced by the transport layer
}

// PaginationMeta describes the position of a page within the full result
// set. All fields are derived, never stored.
type PaginationMeta struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// ListEmployeesInput carries the parameters for the list operation. When
// Page is nil the full (unpaginated) result set is returned and no metadata
// is produced.
type ListEmployeesInput struct {
	Department string // optional filter
	Page       *PageRequest
}

// SearchBySkillInput carries the parameters for the skill search.
type SearchBySkillInput struct {
	Skill string
	Page  *PageRequest
}

// EmployeeService defines the use-case operations for employees.
type EmployeeService interface {
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	Get(ctx context.Context, employeeID string) (*domain.Employee, error)
	// Update applies a partial update. A no-op update (all supplied fields
	// equal to current values) succeeds; a patch with no fields at all is a
	// validation error.
	Update(ctx context.Context, employeeID string, patch EmployeePatch) (*domain.Employee, error)
	Delete(ctx context.Context, employeeID string) error
	List(ctx context.Context, input ListEmployeesInput) ([]*domain.Employee, *PaginationMeta, error)
	SearchBySkill(ctx context.Context, input SearchBySkillInput) ([]*domain.Employee, *PaginationMeta, error)
	AverageSalaryByDepartment(ctx context.Context) ([]DepartmentAverage, error)
}
