package booking

import (
	"context"

	"github.com/BruksfildServices01/pulcro-admin/internal/audit"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

type DeleteBooking struct {
	st    *store.Store
	audit *audit.Dispatcher
}

func NewDeleteBooking(st *store.Store, audit *audit.Dispatcher) *DeleteBooking {
	return &DeleteBooking{st: st, audit: audit}
}

func (uc *DeleteBooking) Execute(ctx context.Context, userID, id string) error {
	if err := uc.st.Bookings.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: id,
	})
	return nil
}
