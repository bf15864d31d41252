package booking

import (
	"context"

	"github.com/BruksfildServices01/pulcro-admin/internal/audit"
	domain "github.com/BruksfildServices01/pulcro-admin/internal/domain/booking"
	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientID      string          `json:"clienteId"`
	ServiceTypeID string          `json:"tipoServicioId"`
	TeamID        string          `json:"equipoId"`
	Date          string          `json:"fecha"`
	Time          string          `json:"hora"`
	Status        domain.Status   `json:"estado"`
	Priority      domain.Priority `json:"prioridad"`
	Address       string          `json:"direccion"`
	Notes         string          `json:"observaciones"`
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	st    *store.Store
	audit *audit.Dispatcher
}

func NewCreateBooking(st *store.Store, audit *audit.Dispatcher) *CreateBooking {
	return &CreateBooking{st: st, audit: audit}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	userID string,
	in CreateBookingInput,
) (models.Booking, error) {

	uc.st.Refs.Lock()
	defer uc.st.Refs.Unlock()

	// --------------------------------------------------
	// 1️⃣ Referências
	// --------------------------------------------------
	client, ok := uc.st.Clients.Get(in.ClientID)
	if !ok {
		return models.Booking{}, httperr.ErrBusiness("client_not_found")
	}
	if _, ok := uc.st.ServiceTypes.Get(in.ServiceTypeID); !ok {
		return models.Booking{}, httperr.ErrBusiness("service_type_not_found")
	}
	if _, ok := uc.st.Teams.Get(in.TeamID); !ok {
		return models.Booking{}, httperr.ErrBusiness("team_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Defaults
	// --------------------------------------------------
	status := in.Status
	if status == "" {
		status = domain.InitialStatus()
	}
	priority := in.Priority
	if priority == "" {
		priority = domain.DefaultPriority()
	}

	// endereço é uma cópia do cliente neste momento
	address := in.Address
	if address == "" {
		address = client.Address
	}

	// --------------------------------------------------
	// 3️⃣ Criação
	// --------------------------------------------------
	b, err := uc.st.Bookings.Create(ctx, models.Booking{
		ClientID:      in.ClientID,
		ServiceTypeID: in.ServiceTypeID,
		TeamID:        in.TeamID,
		Date:          in.Date,
		Time:          in.Time,
		Status:        status,
		Priority:      priority,
		Address:       address,
		Notes:         in.Notes,
	})
	if err != nil {
		return models.Booking{}, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
	})

	return b, nil
}
