package service

import (
	"math"

	"admin-console-backend/internal/repository"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	maxPage      = math.MaxInt32
)

// ListQuery carries the list query string parameters
type ListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Search string `form:"search"`
	Status string `form:"status"`
	Role   string `form:"role"`
}

// Pagination describes the page returned by a list operation
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ListResponse is one page of items plus its pagination block
type ListResponse[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// filter normalizes page and limit and converts the query to a repository filter
func (q ListQuery) filter() repository.ListFilter {
	page := q.Page
	if page < 1 {
		page = defaultPage
	}
	if page > maxPage {
		page = maxPage
	}
	limit := q.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return repository.ListFilter{
		Page:   page,
		Limit:  limit,
		Search: q.Search,
		Status: q.Status,
		Role:   q.Role,
	}
}

func newPagination(f repository.ListFilter, total int64) Pagination {
	totalPages := 0
	if f.Limit > 0 {
		totalPages = int((total + int64(f.Limit) - 1) / int64(f.Limit))
	}
	return Pagination{
		Page:       f.Page,
		Limit:      f.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// mapItems converts every element with fn, never returning nil
func mapItems[M any, R any](items []M, fn func(*M) R) []R {
	out := make([]R, len(items))
	for i := range items {
		out[i] = fn(&items[i])
	}
	return out
}
