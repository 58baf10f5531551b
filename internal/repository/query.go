package repository

import (
	"context"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ListFilter carries the optional list predicates. Non-empty fields are AND-combined.
type ListFilter struct {
	Page   int
	Limit  int
	Search string
	Status string
	Role   string
}

// Offset returns the row offset of the requested page, saturating at math.MaxInt
func (f ListFilter) Offset() int {
	if f.Page < 1 || f.Limit < 1 {
		return 0
	}
	if f.Page-1 > math.MaxInt/f.Limit {
		return math.MaxInt
	}
	return (f.Page - 1) * f.Limit
}

// scope narrows a query; the same scope feeds both the data and the count query
type scope func(db *gorm.DB) *gorm.DB

// likePattern builds a case-insensitive substring pattern, escaping LIKE wildcards
func likePattern(search string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(search)
	return "%" + escaped + "%"
}

// searchScope matches the pattern against any of the given columns
func searchScope(search string, columns ...string) scope {
	search = strings.TrimSpace(search)
	return func(db *gorm.DB) *gorm.DB {
		if search == "" || len(columns) == 0 {
			return db
		}
		pattern := likePattern(search)
		clauses := make([]string, len(columns))
		args := make([]interface{}, len(columns))
		for i, col := range columns {
			clauses[i] = col + " ILIKE ?"
			args[i] = pattern
		}
		return db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}
}

// eqScope adds column = value when value is non-empty
func eqScope(column, value string) scope {
	return func(db *gorm.DB) *gorm.DB {
		if value == "" {
			return db
		}
		return db.Where(column+" = ?", value)
	}
}

// combine applies scopes in order
func combine(scopes ...scope) scope {
	return func(db *gorm.DB) *gorm.DB {
		for _, s := range scopes {
			db = s(db)
		}
		return db
	}
}

// listPage runs the filtered data query and the filtered count query in parallel.
// Pages past the end yield an empty, non-nil slice.
func listPage[T any](ctx context.Context, db *gorm.DB, filter ListFilter, where scope, order string, preloads ...string) ([]T, int64, error) {
	var (
		items []T
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.WithContext(gctx).Model(new(T)).Scopes(where).Count(&total).Error
	})
	g.Go(func() error {
		q := db.WithContext(gctx).Scopes(where).Order(order).Limit(filter.Limit).Offset(filter.Offset())
		for _, p := range preloads {
			q = q.Preload(p)
		}
		return q.Find(&items).Error
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	if items == nil {
		items = []T{}
	}
	return items, total, nil
}
