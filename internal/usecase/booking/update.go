package booking

import (
	"context"

	"github.com/BruksfildServices01/pulcro-admin/internal/audit"
	domain "github.com/BruksfildServices01/pulcro-admin/internal/domain/booking"
	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

type UpdateBooking struct {
	st     *store.Store
	audit  *audit.Dispatcher
	strict bool
}

// NewUpdateBooking cria o caso de uso. Com strict ligado as mudanças de estado
// seguem o grafo de transições.
func NewUpdateBooking(st *store.Store, audit *audit.Dispatcher, strict bool) *UpdateBooking {
	return &UpdateBooking{st: st, audit: audit, strict: strict}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	userID string,
	id string,
	patch models.BookingPatch,
) (models.Booking, error) {

	uc.st.Refs.Lock()
	defer uc.st.Refs.Unlock()

	current, ok := uc.st.Bookings.Get(id)
	if !ok {
		return models.Booking{}, store.ErrNotFound
	}

	if patch.ClientID != nil {
		if _, ok := uc.st.Clients.Get(*patch.ClientID); !ok {
			return models.Booking{}, httperr.ErrBusiness("client_not_found")
		}
	}
	if patch.ServiceTypeID != nil {
		if _, ok := uc.st.ServiceTypes.Get(*patch.ServiceTypeID); !ok {
			return models.Booking{}, httperr.ErrBusiness("service_type_not_found")
		}
	}
	if patch.TeamID != nil {
		if _, ok := uc.st.Teams.Get(*patch.TeamID); !ok {
			return models.Booking{}, httperr.ErrBusiness("team_not_found")
		}
	}

	if uc.strict && patch.Status != nil {
		if err := domain.CanTransition(current.Status, *patch.Status); err != nil {
			return models.Booking{}, err
		}
	}

	b, err := uc.st.Bookings.Update(ctx, id, patch)
	if err != nil {
		return models.Booking{}, err
	}

	ev := audit.Event{
		UserID:   userID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: b.ID,
	}
	if b.Status != current.Status {
		ev.Action = "booking_status_changed"
		ev.Metadata = map[string]domain.Status{"from": current.Status, "to": b.Status}
	}
	uc.audit.Dispatch(ev)

	return b, nil
}
