package catalog

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/pulcro-admin/internal/audit"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

// ======================================================
// DELETE TEAM
// ======================================================

type DeleteTeam struct {
	st    *store.Store
	audit *audit.Dispatcher
}

func NewDeleteTeam(st *store.Store, audit *audit.Dispatcher) *DeleteTeam {
	return &DeleteTeam{st: st, audit: audit}
}

// Execute recusa a exclusão enquanto algum agendamento usar a equipe
func (uc *DeleteTeam) Execute(ctx context.Context, userID, id string) error {
	uc.st.Refs.Lock()
	defer uc.st.Refs.Unlock()

	if uc.st.Bookings.Any(func(b models.Booking) bool { return b.TeamID == id }) {
		return fmt.Errorf("%w: team %s has bookings", ErrReferenced, id)
	}
	if err := uc.st.Teams.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "team_deleted",
		Entity:   "team",
		EntityID: id,
	})
	return nil
}

// ======================================================
// DELETE SERVICE TYPE
// ======================================================

type DeleteServiceType struct {
	st    *store.Store
	audit *audit.Dispatcher
}

func NewDeleteServiceType(st *store.Store, audit *audit.Dispatcher) *DeleteServiceType {
	return &DeleteServiceType{st: st, audit: audit}
}

func (uc *DeleteServiceType) Execute(ctx context.Context, userID, id string) error {
	uc.st.Refs.Lock()
	defer uc.st.Refs.Unlock()

	if uc.st.Bookings.Any(func(b models.Booking) bool { return b.ServiceTypeID == id }) {
		return fmt.Errorf("%w: service type %s has bookings", ErrReferenced, id)
	}
	if err := uc.st.ServiceTypes.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "service_type_deleted",
		Entity:   "service_type",
		EntityID: id,
	})
	return nil
}
