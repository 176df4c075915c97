package config_test

import (
	"testing"
	"time"

	"go-leave/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LEAVE_MAX_SPAN_DAYS", "")
	t.Setenv("RATE_LIMIT_BACKEND", "")

	cfg := config.Load()

	assert.Equal(t, 30, cfg.Policy.LeaveMaxSpanDays)
	assert.Equal(t, 2, cfg.Policy.LeaveMinNoticeDays)
	assert.Equal(t, 0, cfg.Policy.WFHMinNoticeDays)
	assert.Equal(t, 72*time.Hour, cfg.Policy.EscalationThreshold)
	assert.Equal(t, 5, cfg.Policy.MaxHierarchyDepth)
	assert.Equal(t, "memory", cfg.RateLimit.Backend)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LEAVE_MIN_NOTICE_DAYS", "5")
	t.Setenv("ESCALATION_THRESHOLD", "24h")
	t.Setenv("RATE_LIMIT_BACKEND", "redis")

	cfg := config.Load()

	assert.Equal(t, 5, cfg.Policy.LeaveMinNoticeDays)
	assert.Equal(t, 24*time.Hour, cfg.Policy.EscalationThreshold)
	assert.Equal(t, "redis", cfg.RateLimit.Backend)
}

func TestValidate(t *testing.T) {
	t.Run("negative invalid backend", func(t *testing.T) {
		cfg := config.Load()
		cfg.RateLimit.Backend = "memcached"
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative invalid cron", func(t *testing.T) {
		cfg := config.Load()
		cfg.ReconcileCron = "every night"
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative invalid executive id", func(t *testing.T) {
		cfg := config.Load()
		cfg.Policy.ExecutiveFallbackID = "ceo"
		assert.Error(t, cfg.Validate())
	})
}
