package backup

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	jsoniter "github.com/json-iterator/go"

	"github.com/BruksfildServices01/pulcro-admin/internal/log"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/query"
	"github.com/BruksfildServices01/pulcro-admin/internal/report"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeJSON = "application/json"
)

// Snapshot é o conteúdo completo do painel, sem senhas nem auditoria
type Snapshot struct {
	GeneratedAt  time.Time            `json:"generadoEn"`
	Clients      []models.Client      `json:"clientes"`
	ServiceTypes []models.ServiceType `json:"tiposServicio"`
	Teams        []models.Team        `json:"equipos"`
	Bookings     []models.Booking     `json:"servicios"`
}

// Result lista as chaves gravadas numa execução
type Result struct {
	Keys []string `json:"keys"`
}

// Service gera os CSVs e o snapshot e envia ao Uploader, sob demanda ou via cron
type Service struct {
	st        *store.Store
	uploader  Uploader
	cron      string
	location  *time.Location
	scheduler *gocron.Scheduler

	mu      sync.Mutex
	running bool
}

func NewService(st *store.Store, uploader Uploader, cron string, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		st:        st,
		uploader:  uploader,
		cron:      cron,
		location:  loc,
		scheduler: gocron.NewScheduler(loc),
	}
}

// Start agenda o backup e para o scheduler quando ctx for cancelado
func (s *Service) Start(ctx context.Context) error {
	log.WithField("cron", s.cron).Info("scheduling backups")

	_, err := s.scheduler.Cron(s.cron).Do(func() {
		if _, err := s.Run(context.Background()); err != nil {
			log.WithError(err).Error("scheduled backup failed")
		}
	})
	if err != nil {
		return fmt.Errorf("schedule backup %q: %w", s.cron, err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L().Info("stopping backup scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// Run envia clientes.csv, servicios.csv e datos.json para backups/AAAA-MM-DD/.
// Uma execução em andamento faz a seguinte devolver ErrRunning.
func (s *Service) Run(ctx context.Context) (Result, error) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return Result{}, ErrRunning
	}
	s.running = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	now := s.st.Now().In(s.location)
	prefix := "backups/" + now.Format("2006-01-02") + "/"

	clients := s.st.Clients.List()
	snapshot, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(Snapshot{
		GeneratedAt:  now,
		Clients:      clients,
		ServiceTypes: s.st.ServiceTypes.List(),
		Teams:        s.st.Teams.List(),
		Bookings:     s.st.Bookings.List(),
	})
	if err != nil {
		return Result{}, fmt.Errorf("encode snapshot: %w", err)
	}

	files := []struct {
		name        string
		body        []byte
		contentType string
	}{
		{"clientes.csv", []byte(report.ClientsCSV(clients)), contentTypeCSV},
		{"servicios.csv", []byte(report.BookingsCSV(query.DetailedBookings(s.st), clients)), contentTypeCSV},
		{"datos.json", snapshot, contentTypeJSON},
	}

	var res Result
	for _, f := range files {
		key := prefix + f.name
		if err := s.uploader.Upload(ctx, key, f.body, f.contentType); err != nil {
			return res, err
		}
		res.Keys = append(res.Keys, key)
	}

	log.ForContext(ctx).WithField("keys", res.Keys).Info("backup uploaded")
	return res, nil
}
