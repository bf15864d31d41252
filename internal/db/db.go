package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/pulcro-admin/internal/config"
	"github.com/BruksfildServices01/pulcro-admin/internal/kv"
)

// Open escolhe o backend chave-valor conforme STORAGE_DRIVER
func Open(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		return kv.NewMemory(), nil
	case config.DriverSQLite:
		return kv.OpenSQLite(cfg.SQLitePath)
	case config.DriverRedis:
		return kv.NewRedis(ctx, cfg.RedisURL)
	case config.DriverPostgres:
		gdb, err := NewGorm(cfg)
		if err != nil {
			return nil, err
		}
		return kv.NewPostgres(gdb)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func NewGorm(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	return db, nil
}
