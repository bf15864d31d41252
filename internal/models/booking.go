package models

import (
	"errors"
	"time"

	domain "github.com/BruksfildServices01/pulcro-admin/internal/domain/booking"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
)

// Booking é um serviço agendado para um cliente, executado por uma equipe.
// Address é uma cópia do endereço do cliente no momento da criação.
type Booking struct {
	ID            string          `json:"id"`
	ClientID      string          `json:"clienteId" validate:"required"`
	ServiceTypeID string          `json:"tipoServicioId" validate:"required"`
	TeamID        string          `json:"equipoId" validate:"required"`
	Date          string          `json:"fecha" validate:"required,datetime=2006-01-02"`
	Time          string          `json:"hora" validate:"required,datetime=15:04"`
	Status        domain.Status   `json:"estado"`
	Priority      domain.Priority `json:"prioridad"`
	Address       string          `json:"direccion,omitempty"`
	Notes         string          `json:"observaciones,omitempty"`

	CreatedAt time.Time `json:"fechaCreacion"`
	UpdatedAt time.Time `json:"fechaActualizacion"`
}

func (b *Booking) Key() string { return b.ID }

func (b *Booking) Assign(id string, now time.Time) {
	b.ID = id
	b.CreatedAt = now
	b.UpdatedAt = now
}

func (b *Booking) Touch(now time.Time) { b.UpdatedAt = now }

func (b Booking) Validate() error {
	if !b.Status.Valid() {
		return ErrInvalidStatus
	}
	if !b.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}

type BookingPatch struct {
	ClientID      *string          `json:"clienteId" validate:"omitempty,min=1"`
	ServiceTypeID *string          `json:"tipoServicioId" validate:"omitempty,min=1"`
	TeamID        *string          `json:"equipoId" validate:"omitempty,min=1"`
	Date          *string          `json:"fecha" validate:"omitempty,datetime=2006-01-02"`
	Time          *string          `json:"hora" validate:"omitempty,datetime=15:04"`
	Status        *domain.Status   `json:"estado"`
	Priority      *domain.Priority `json:"prioridad"`
	Address       *string          `json:"direccion"`
	Notes         *string          `json:"observaciones"`
}

func (p BookingPatch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}

func (p BookingPatch) Apply(b *Booking) {
	setString(&b.ClientID, p.ClientID)
	setString(&b.ServiceTypeID, p.ServiceTypeID)
	setString(&b.TeamID, p.TeamID)
	setString(&b.Date, p.Date)
	setString(&b.Time, p.Time)
	setString(&b.Address, p.Address)
	setString(&b.Notes, p.Notes)
	if p.Status != nil {
		b.Status = *p.Status
	}
	if p.Priority != nil {
		b.Priority = *p.Priority
	}
}

// DetailedBooking é a visão do agendamento já com os nomes das entidades referenciadas
type DetailedBooking struct {
	Booking
	ClientName      string  `json:"clienteNombre"`
	ServiceTypeName string  `json:"tipoServicioNombre"`
	TeamName        string  `json:"equipoNombre"`
	Price           float64 `json:"precio"`
}
