package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/peoplehub/employee-api/internal/api/metrics"
	"github.com/peoplehub/employee-api/internal/core/domain"
	"github.com/peoplehub/employee-api/internal/core/ports"
)

// maxIDAllocationAttempts bounds how often a create is retried when two
// concurrent creations race for the same sequential id. The unique index on
// employee_id is the arbiter; losing the race is cheap to repeat.
const maxIDAllocationAttempts = 5

// ReportCache abstracts the avg-salary report cache (Redis). Entries are
// invalidated on every employee mutation.
type ReportCache interface {
	GetAverageSalaries(ctx context.Context) ([]ports.DepartmentAverage, bool, error)
	SetAverageSalaries(ctx context.Context, rows []ports.DepartmentAverage) error
	Invalidate(ctx context.Context) error
}

type EmployeeService struct {
	repo   ports.EmployeeRepository
	cache  ReportCache // optional; nil disables caching
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, cache ReportCache, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, cache: cache, logger: logger}
}

// Create allocates the next sequential employee id and persists the record.
// When a concurrent creation wins the same id, the duplicate-key error from
// the repository triggers a re-allocation; the conflict is never silently
// dropped.
func (s *EmployeeService) Create(ctx context.Context, input ports.CreateEmployeeInput) (*domain.Employee, error) {
	employee := &domain.Employee{
		Name:        input.Name,
		Department:  input.Department,
		Salary:      input.Salary,
		JoiningDate: input.JoiningDate,
		Skills:      domain.NormalizeSkills(input.Skills),
	}
	if err := employee.Validate(); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		id, err := s.repo.NextEmployeeID(ctx)
		if err != nil {
			return nil, fmt.Errorf("allocate employee id: %w", err)
		}
		employee.EmployeeID = id

		err = s.repo.Insert(ctx, employee)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateEmployeeID) || attempt >= maxIDAllocationAttempts {
			s.logger.Error().Err(err).Str("employee_id", id).Msg("failed to create employee")
			return nil, err
		}
		metrics.IDAllocationRetriesTotal.Inc()
		s.logger.Debug().Str("employee_id", id).Int("attempt", attempt).Msg("id allocation conflict, retrying")
	}

	metrics.EmployeesCreatedTotal.WithLabelValues(employee.Department).Inc()
	s.invalidateReportCache(ctx)
	s.logger.Info().Str("employee_id", employee.EmployeeID).Str("department", employee.Department).Msg("employee created")

	return s.repo.FindByEmployeeID(ctx, employee.EmployeeID)
}

func (s *EmployeeService) Get(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.repo.FindByEmployeeID(ctx, employeeID)
}

// Update applies a partial update. Only supplied fields change; the merged
// result must still satisfy every entity invariant. An update that changes
// nothing is accepted and returns the current record.
func (s *EmployeeService) Update(ctx context.Context, employeeID string, patch ports.EmployeePatch) (*domain.Employee, error) {
	if patch.IsEmpty() {
		return nil, domain.NewValidationError("no fields provided for update")
	}

	existing, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if patch.Skills != nil {
		patch.Skills = domain.NormalizeSkills(patch.Skills)
		if patch.Skills == nil {
			return nil, domain.NewValidationError("skills must be a non-empty list")
		}
	}

	merged := *existing
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Department != nil {
		merged.Department = *patch.Department
	}
	if patch.Salary != nil {
		merged.Salary = *patch.Salary
	}
	if patch.JoiningDate != nil {
		merged.JoiningDate = *patch.JoiningDate
	}
	if patch.Skills != nil {
		merged.Skills = patch.Skills
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, employeeID, patch); err != nil {
		return nil, err
	}

	s.invalidateReportCache(ctx)
	s.logger.Info().Str("employee_id", employeeID).Msg("employee updated")

	return s.repo.FindByEmployeeID(ctx, employeeID)
}

func (s *EmployeeService) Delete(ctx context.Context, employeeID string) error {
	if err := s.repo.Delete(ctx, employeeID); err != nil {
		return err
	}
	s.invalidateReportCache(ctx)
	s.logger.Info().Str("employee_id", employeeID).Msg("employee deleted")
	return nil
}

// List returns employees, optionally filtered by department. Without a page
// request the full result set is returned and no metadata is produced.
func (s *EmployeeService) List(ctx context.Context, input ports.ListEmployeesInput) ([]*domain.Employee, *ports.PaginationMeta, error) {
	filter := ports.ListEmployeesFilter{Department: input.Department}
	return s.listPage(ctx, filter, input.Page)
}

// SearchBySkill returns employees whose skills contain the query as a
// case-insensitive substring.
func (s *EmployeeService) SearchBySkill(ctx context.Context, input ports.SearchBySkillInput) ([]*domain.Employee, *ports.PaginationMeta, error) {
	filter := ports.ListEmployeesFilter{Skill: input.Skill}
	return s.listPage(ctx, filter, input.Page)
}

func (s *EmployeeService) listPage(ctx context.Context, filter ports.ListEmployeesFilter, page *ports.PageRequest) ([]*domain.Employee, *ports.PaginationMeta, error) {
	if page != nil {
		filter.Offset = pageOffset(page.Page, page.PageSize)
		filter.Limit = int64(page.PageSize)
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	if page == nil {
		return items, nil, nil
	}

	meta := ComputePagination(page.Page, page.PageSize, total)
	return items, &meta, nil
}

// AverageSalaryByDepartment serves the salary report, preferring the cache.
// Cache failures are logged and bypassed, never surfaced to the caller.
func (s *EmployeeService) AverageSalaryByDepartment(ctx context.Context) ([]ports.DepartmentAverage, error) {
	if s.cache != nil {
		rows, ok, err := s.cache.GetAverageSalaries(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("salary report cache read failed")
		} else if ok {
			metrics.SalaryReportCacheTotal.WithLabelValues("hit").Inc()
			return rows, nil
		}
		metrics.SalaryReportCacheTotal.WithLabelValues("miss").Inc()
	}

	rows, err := s.repo.AverageSalaryByDepartment(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAverageSalaries(ctx, rows); err != nil {
			s.logger.Warn().Err(err).Msg("salary report cache write failed")
		}
	}
	return rows, nil
}

func (s *EmployeeService) invalidateReportCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("salary report cache invalidation failed")
	}
}
