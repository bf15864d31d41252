package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/BruksfildServices01/pulcro-admin/internal/log"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/storage"
)

type (
	Clients      = Collection[models.Client, *models.Client]
	ServiceTypes = Collection[models.ServiceType, *models.ServiceType]
	Teams        = Collection[models.Team, *models.Team]
	Bookings     = Collection[models.Booking, *models.Booking]
	Users        = Collection[models.User, *models.User]
	AuditLogs    = Collection[models.AuditLog, *models.AuditLog]
)

// Store reúne as coleções do painel. É criado uma vez no startup e injetado
// em quem precisar.
type Store struct {
	Adapter *storage.Adapter

	Clients      *Clients
	ServiceTypes *ServiceTypes
	Teams        *Teams
	Bookings     *Bookings
	Users        *Users
	AuditLogs    *AuditLogs

	// Refs serializa operações que leem uma coleção e gravam outra
	// (checagem de referências antes de criar ou apagar).
	Refs sync.Mutex

	now func() time.Time
}

type Option func(*Store)

// WithClock troca o relógio usado para ids e datas
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open monta o store e carrega todas as coleções. Coleções ilegíveis ficam
// vazias e o erro é devolvido junto com um Store utilizável.
func Open(ctx context.Context, a *storage.Adapter, opts ...Option) (*Store, error) {
	s := &Store{Adapter: a, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	clock := func() time.Time { return s.now() }

	s.Clients = newCollection[models.Client](a, storage.KeyClients, clock)
	s.ServiceTypes = newCollection[models.ServiceType](a, storage.KeyServiceTypes, clock)
	s.Teams = newCollection[models.Team](a, storage.KeyTeams, clock)
	s.Bookings = newCollection[models.Booking](a, storage.KeyBookings, clock)
	s.Users = newCollection[models.User](a, storage.KeyUsers, clock)
	s.AuditLogs = newCollection[models.AuditLog](a, storage.KeyAuditLogs, clock)

	return s, s.Reload(ctx)
}

// Reload relê todas as coleções do backend
func (s *Store) Reload(ctx context.Context) error {
	loaders := []func(context.Context) error{
		s.Clients.Reload,
		s.ServiceTypes.Reload,
		s.Teams.Reload,
		s.Bookings.Reload,
		s.Users.Reload,
		s.AuditLogs.Reload,
	}

	var errs []error
	for _, load := range loaders {
		if err := load(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Store) Now() time.Time {
	return s.now()
}

// Reset apaga tudo, regrava o dataset inicial e recarrega a memória
func (s *Store) Reset(ctx context.Context) error {
	if err := s.Adapter.ClearAll(ctx); err != nil {
		return err
	}
	if _, err := s.Adapter.InitializeOnce(ctx, s.now()); err != nil {
		return err
	}

	log.ForContext(ctx).Warn("store reset to seed data")
	return s.Reload(ctx)
}
