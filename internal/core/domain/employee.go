package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	MaxNameLength       = 100
	MaxDepartmentLength = 50

	// JoiningDateLayout is the calendar-date format employees are stored with.
	JoiningDateLayout = "2006-01-02"
)

var ErrEmployeeNotFound = errors.New("employee not found")
var ErrDuplicateEmployeeID = errors.New("employee id already exists")

// ValidationError reports an entity invariant violation. It carries a
// human-readable message that is safe to return to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Employee is the core aggregate root. EmployeeID is the human-readable
// identifier (E001, E002, ...) and is immutable after creation.
type Employee struct {
	ID          string   `json:"-" bson:"_id,omitempty"`
	EmployeeID  string   `json:"id" bson:"employee_id"`
	Name        string   `json:"name" bson:"name"`
	Department  string   `json:"department" bson:"department"`
	Salary      float64  `json:"salary" bson:"salary"`
	JoiningDate string   `json:"joining_date" bson:"joining_date"`
	Skills      []string `json:"skills" bson:"skills"`
}

// Validate checks all entity invariants. It is applied to new employees and
// to the merged result of a partial update before anything is persisted.
func (e *Employee) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return NewValidationError("name must not be empty")
	}
	if len(e.Name) > MaxNameLength {
		return NewValidationError("name must be at most %d characters", MaxNameLength)
	}
	if strings.TrimSpace(e.Department) == "" {
		return NewValidationError("department must not be empty")
	}
	if len(e.Department) > MaxDepartmentLength {
		return NewValidationError("department must be at most %d characters", MaxDepartmentLength)
	}
	if e.Salary <= 0 {
		return NewValidationError("salary must be positive")
	}
	if _, err := time.Parse(JoiningDateLayout, e.JoiningDate); err != nil {
		return NewValidationError("joining_date must be in YYYY-MM-DD format")
	}
	if len(e.Skills) == 0 {
		return NewValidationError("skills must be a non-empty list")
	}
	for _, s := range e.Skills {
		if strings.TrimSpace(s) == "" {
			return NewValidationError("skills must not contain empty entries")
		}
	}
	return nil
}

// NormalizeSkills trims whitespace from each skill and drops blank entries.
// Returns nil when nothing usable remains.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
