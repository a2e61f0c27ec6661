package service

import (
	"github.com/peoplehub/employee-api/internal/core/ports"
)

// ComputePagination derives page navigation metadata from a 1-based page,
// a page size, and the repository's total match count. An empty result set
// still has one (empty) page, so TotalPages is never below 1. A page
// beyond TotalPages is legal: it yields an empty item list with HasNext
// false.
func ComputePagination(page, pageSize int, totalItems int64) ports.PaginationMeta {
	totalPages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	return ports.PaginationMeta{
		Page:        page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

// pageOffset converts a 1-based page into a skip count.
func pageOffset(page, pageSize int) int64 {
	return int64(page-1) * int64(pageSize)
}
