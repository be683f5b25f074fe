package logger_test

import (
	"context"
	"testing"

	"ensemble-backend/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestWithContextPrefersEmail(t *testing.T) {
	ctx := context.WithValue(context.Background(), "email", "dana.levi@example.com")
	ctx = context.WithValue(ctx, "username", "dlevi")

	log := logger.WithContext(ctx)
	assert.Equal(t, "dana.levi@example.com", log.Entry.Data["user"])
}

func TestWithContextFallsBackToUsername(t *testing.T) {
	ctx := context.WithValue(context.Background(), "username", "dlevi")

	log := logger.WithContext(ctx)
	assert.Equal(t, "dlevi", log.Entry.Data["user"])
}

func TestWithContextUnknownUser(t *testing.T) {
	log := logger.WithContext(context.Background())
	assert.Equal(t, "unknown", log.Entry.Data["user"])
}

func TestWithFieldsAccumulates(t *testing.T) {
	log := logger.New().
		WithField("asset_id", "APM0042").
		WithFields(map[string]interface{}{"team_id": "payments"})

	assert.Equal(t, "APM0042", log.Entry.Data["asset_id"])
	assert.Equal(t, "payments", log.Entry.Data["team_id"])
}
