package service

import (
	"math"
	"testing"
	"time"

	apperrors "admin-console-backend/internal/errors"
	"admin-console-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListQueryFilter(t *testing.T) {
	tests := []struct {
		name     string
		query    ListQuery
		expected repository.ListFilter
	}{
		{"defaults", ListQuery{}, repository.ListFilter{Page: 1, Limit: 10}},
		{"negative values", ListQuery{Page: -2, Limit: -5}, repository.ListFilter{Page: 1, Limit: 10}},
		{"capped limit", ListQuery{Page: 2, Limit: 250}, repository.ListFilter{Page: 2, Limit: 100}},
		{"capped page", ListQuery{Page: math.MaxInt64 / 5, Limit: 10}, repository.ListFilter{Page: math.MaxInt32, Limit: 10}},
		{"filters pass through", ListQuery{Search: "eng", Status: "active", Role: "admin"}, repository.ListFilter{Page: 1, Limit: 10, Search: "eng", Status: "active", Role: "admin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.query.filter())
		})
	}
}

func TestNewPagination(t *testing.T) {
	f := repository.ListFilter{Page: 2, Limit: 10}

	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 0, TotalPages: 0}, newPagination(f, 0))
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 10, TotalPages: 1}, newPagination(f, 10))
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 11, TotalPages: 2}, newPagination(f, 11))
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	for _, in := range []string{
		"2024-01-01T10:00",
		"2024-01-01T10:00:00",
		"2024-01-01 10:00",
		"2024-01-01T10:00:00Z",
		"2024-01-01T12:00:00+02:00",
	} {
		got, err := parseTime("time_start", in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	_, err := parseTime("time_end", "01/01/2024")
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "time_end", verr.Field)
}

func TestHashPassword(t *testing.T) {
	hash, err := hashPassword("secret")

	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.Contains(t, hash, "$2a$")
}
