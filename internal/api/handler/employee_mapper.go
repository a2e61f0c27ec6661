package handler

import (
	"github.com/peoplehub/employee-api/internal/core/domain"
	"github.com/peoplehub/employee-api/internal/core/ports"
)

func toEmployeeResponse(e *domain.Employee) employeeResponse {
	return employeeResponse{
		ID:          e.EmployeeID,
		Name:        e.Name,
		Department:  e.Department,
		Salary:      e.Salary,
		JoiningDate: e.JoiningDate,
		Skills:      e.Skills,
	}
}

func toEmployeeResponses(items []*domain.Employee) []employeeResponse {
	out := make([]employeeResponse, len(items))
	for i, e := range items {
		out[i] = toEmployeeResponse(e)
	}
	return out
}

// toListPayload shapes the list/search result: a bare array without
// pagination, the {items, meta} envelope with it.
func toListPayload(items []*domain.Employee, meta *ports.PaginationMeta) any {
	if meta == nil {
		return toEmployeeResponses(items)
	}
	return paginatedEmployeesResponse{
		Items: toEmployeeResponses(items),
		Meta: paginationMetaResponse{
			Page:        meta.Page,
			PageSize:    meta.PageSize,
			TotalItems:  meta.TotalItems,
			TotalPages:  meta.TotalPages,
			HasNext:     meta.HasNext,
			HasPrevious: meta.HasPrevious,
		},
	}
}

func toPatch(req updateEmployeeRequest) ports.EmployeePatch {
	return ports.EmployeePatch{
		Name:        req.Name,
		Department:  req.Department,
		Salary:      req.Salary,
		JoiningDate: req.JoiningDate,
		Skills:      req.Skills,
	}
}

func toDepartmentAverages(rows []ports.DepartmentAverage) []departmentAverageResponse {
	out := make([]departmentAverageResponse, len(rows))
	for i, r := range rows {
		out[i] = departmentAverageResponse{Department: r.Department, AvgSalary: r.AvgSalary}
	}
	return out
}
