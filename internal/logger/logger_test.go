package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "abc")

	assert.Equal(t, "abc", RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}

func TestWithContextAddsRequestID(t *testing.T) {
	l := WithContext(ContextWithRequestID(context.Background(), "abc"))
	assert.Equal(t, "abc", l.Data["request_id"])

	plain := WithContext(context.Background())
	assert.NotContains(t, plain.Data, "request_id")
}

func TestFieldsAccumulate(t *testing.T) {
	l := New().WithField("entity", "user").WithFields(map[string]interface{}{"action": "created"})

	assert.Equal(t, "user", l.Data["entity"])
	assert.Equal(t, "created", l.Data["action"])
}
