package ports

import (
	"context"

	"github.com/peoplehub/employee-api/internal/core/domain"
)

// ListEmployeesFilter carries the query parameters for listing employees.
// Limit == 0 means "no pagination": return every matching record.
type ListEmployeesFilter struct {
	Department string // optional: exact match on department
	Skill      string // optional: case-insensitive substring match on any skill
	Offset     int64
	Limit      int64
}

// DepartmentAverage is one row of the salary aggregation.
type DepartmentAverage struct {
	Department string  `json:"department" bson:"department"`
	AvgSalary  float64 `json:"avg_salary" bson:"avg_salary"`
}

// EmployeeRepository defines persistence operations for employees.
type EmployeeRepository interface {
	// NextEmployeeID derives the next sequential identifier from the current
	// maximum numeric suffix among ids matching ^E[0-9]+$. Returns "E001"
	// when no such ids exist.
	NextEmployeeID(ctx context.Context) (string, error)

	// Insert persists a new employee. Returns domain.ErrDuplicateEmployeeID
	// when the unique index on employee_id rejects the write, so the caller
	// can re-allocate and retry.
	Insert(ctx context.Context, e *domain.Employee) error

	FindByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// Update applies a partial $set of the non-nil patch fields. Returns
	// domain.ErrEmployeeNotFound when no document matches. A matched
	// document whose values are already equal to the patch is a success.
	Update(ctx context.Context, employeeID string, patch EmployeePatch) error

	Delete(ctx context.Context, employeeID string) error

	// List returns a page of employees matching filter plus the total count
	// of matches. Results are sorted by joining_date descending, ties broken
	// by insertion order.
	List(ctx context.Context, filter ListEmployeesFilter) ([]*domain.Employee, int64, error)

	// AverageSalaryByDepartment groups all employees by department and
	// returns the mean salary per department rounded to 2 decimal places,
	// sorted by department name ascending.
	AverageSalaryByDepartment(ctx context.Context) ([]DepartmentAverage, error)
}

// EmployeePatch holds the fields of a partial update. Nil pointers (and a
// nil Skills slice) mean "leave unchanged".
type EmployeePatch struct {
	Name        *string
	Department  *string
	Salary      *float64
	JoiningDate *string
	Skills      []string
}

// IsEmpty reports whether the patch carries no fields at all.
func (p EmployeePatch) IsEmpty() bool {
	return p.Name == nil && p.Department == nil && p.Salary == nil &&
		p.JoiningDate == nil && p.Skills == nil
}
