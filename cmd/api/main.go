package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pulcro-admin/internal/audit"
	"github.com/BruksfildServices01/pulcro-admin/internal/backup"
	"github.com/BruksfildServices01/pulcro-admin/internal/config"
	dbpkg "github.com/BruksfildServices01/pulcro-admin/internal/db"
	"github.com/BruksfildServices01/pulcro-admin/internal/log"
	"github.com/BruksfildServices01/pulcro-admin/internal/routes"
	"github.com/BruksfildServices01/pulcro-admin/internal/storage"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
	"github.com/BruksfildServices01/pulcro-admin/internal/timezone"
)

func main() {

	cfg := config.Load()
	log.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ======================================================
	// STORAGE
	// ======================================================
	backend, err := dbpkg.Open(ctx, cfg)
	if err != nil {
		log.WithError(err).WithField("driver", cfg.StorageDriver).Fatal("failed to open storage")
	}
	defer backend.Close()

	if !timezone.IsValid(cfg.Timezone) {
		log.WithField("timezone", cfg.Timezone).Warn("unknown timezone, using Buenos Aires")
	}
	clock := timezone.Clock(cfg.Timezone)

	adapter := storage.New(backend, cfg.KeyPrefix)

	seeded, err := adapter.InitializeOnce(ctx, clock())
	if err != nil {
		log.WithError(err).Fatal("failed to seed storage")
	}
	if seeded {
		log.L().Info("initial dataset written")
	}

	st, err := store.Open(ctx, adapter, store.WithClock(clock))
	if err != nil {
		// coleções ilegíveis começam vazias; o painel segue funcionando
		log.WithError(err).Warn("some collections could not be loaded")
	}

	dispatcher := audit.NewDispatcher(audit.New(st.AuditLogs, cfg.AuditRetention))
	defer dispatcher.Close()

	// ======================================================
	// BACKUP
	// ======================================================
	var backupSvc *backup.Service
	if cfg.Backup.Enabled() {
		backupSvc = backup.NewService(
			st,
			backup.NewS3Uploader(cfg.Backup),
			cfg.Backup.Cron,
			timezone.Location(cfg.Timezone),
		)
		if err := backupSvc.Start(ctx); err != nil {
			log.WithError(err).Error("backup scheduler not started")
		}
	}

	// ======================================================
	// HTTP
	// ======================================================
	if !log.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config: cfg,
		Store:  st,
		Audit:  dispatcher,
		Backup: backupSvc,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.Addr()).Info("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	<-ctx.Done()
	log.L().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
}
