package database

import (
	"testing"
	"time"

	"admin-console-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithConnectTimeout(t *testing.T) {
	tests := []struct {
		name     string
		dsn      string
		timeout  time.Duration
		expected string
	}{
		{
			name:     "url dsn",
			dsn:      "postgres://u:p@localhost:5432/db?sslmode=disable",
			timeout:  2 * time.Second,
			expected: "postgres://u:p@localhost:5432/db?connect_timeout=2&sslmode=disable",
		},
		{
			name:     "keyword dsn",
			dsn:      "host=localhost dbname=db",
			timeout:  3 * time.Second,
			expected: "host=localhost dbname=db connect_timeout=3",
		},
		{
			name:     "sub-second rounds up to one",
			dsn:      "host=localhost",
			timeout:  100 * time.Millisecond,
			expected: "host=localhost connect_timeout=1",
		},
		{
			name:     "explicit timeout kept",
			dsn:      "host=localhost connect_timeout=9",
			timeout:  time.Second,
			expected: "host=localhost connect_timeout=9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, withConnectTimeout(tt.dsn, tt.timeout))
		})
	}
}

func TestDefaultSeed(t *testing.T) {
	data, err := DefaultSeed()
	require.NoError(t, err)

	require.NotEmpty(t, data.Users)
	require.NotEmpty(t, data.Groups)
	require.NotEmpty(t, data.Events)
	require.NotEmpty(t, data.Surveys)

	for _, u := range data.Users {
		assert.True(t, models.Role(u.Role).IsValid(), u.Username)
	}
	for _, e := range data.Events {
		assert.True(t, e.TimeEnd.After(e.TimeStart), e.Name)
		assert.True(t, models.EventStatus(e.Status).IsValid(), e.Name)
	}
	for _, s := range data.Surveys {
		assert.True(t, models.SurveyStatus(s.Status).IsValid(), s.Name)
		for _, f := range s.Form {
			assert.True(t, f.Type.IsValid(), f.ID)
		}
	}
}

func TestParseSeedRejectsMalformedYAML(t *testing.T) {
	_, err := parseSeed([]byte("users: [unterminated"))
	assert.Error(t, err)
}
