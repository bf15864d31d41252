package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("STRICT_STATUS_TRANSITIONS", "")
	t.Setenv("BACKUP_BUCKET", "")
	t.Setenv("AUDIT_RETENTION", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverSQLite, cfg.StorageDriver)
	assert.False(t, cfg.StrictStatusTransitions)
	assert.Equal(t, 10, cfg.LoginRatePerMinute)
	assert.Equal(t, 5000, cfg.AuditRetention)
	assert.False(t, cfg.Backup.Enabled())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", DriverMemory)
	t.Setenv("STRICT_STATUS_TRANSITIONS", "true")
	t.Setenv("LOGIN_RATE_PER_MINUTE", "-3")
	t.Setenv("BACKUP_BUCKET", "pulcro-backups")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.True(t, cfg.StrictStatusTransitions)
	assert.Equal(t, 10, cfg.LoginRatePerMinute, "valores inválidos caem no default")
	assert.True(t, cfg.Backup.Enabled())
}
