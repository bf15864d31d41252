package models

import (
	"errors"
	"time"
)

type Recurrence string

const (
	RecurrenceMonthly   Recurrence = "Mensual"
	RecurrenceQuarterly Recurrence = "Trimestral"
	RecurrenceBiannual  Recurrence = "Semestral"
	RecurrenceYearly    Recurrence = "Anual"
	RecurrenceOnDemand  Recurrence = "Bajo demanda"
)

var Recurrences = []Recurrence{
	RecurrenceMonthly,
	RecurrenceQuarterly,
	RecurrenceBiannual,
	RecurrenceYearly,
	RecurrenceOnDemand,
}

func (r Recurrence) Valid() bool {
	for _, v := range Recurrences {
		if r == v {
			return true
		}
	}
	return false
}

type Category string

const (
	CategoryBasic       Category = "Básico"
	CategoryComplete    Category = "Completo"
	CategoryMaintenance Category = "Mantenimiento"
	CategoryInspection  Category = "Inspección"
	CategorySpecialized Category = "Especializado"
	CategoryEmergency   Category = "Emergencia"
)

var Categories = []Category{
	CategoryBasic,
	CategoryComplete,
	CategoryMaintenance,
	CategoryInspection,
	CategorySpecialized,
	CategoryEmergency,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

var (
	ErrInvalidRecurrence = errors.New("invalid recurrence")
	ErrInvalidCategory   = errors.New("invalid category")
)

type ServiceType struct {
	ID               string     `json:"id"`
	Name             string     `json:"nombre" validate:"required"`
	Price            float64    `json:"precio" validate:"gte=0"`
	Description      string     `json:"descripcion,omitempty"`
	EstimatedMinutes int        `json:"tiempoEstimado,omitempty" validate:"gt=0"`
	Recurrence       Recurrence `json:"frecuencia,omitempty"`
	Category         Category   `json:"categoria,omitempty"`

	CreatedAt time.Time `json:"fechaCreacion"`
}

func (s *ServiceType) Key() string { return s.ID }

func (s *ServiceType) Assign(id string, now time.Time) {
	s.ID = id
	s.CreatedAt = now
}

// Touch não faz nada: tipos de serviço só têm data de criação
func (s *ServiceType) Touch(time.Time) {}

// Validate cobre os rótulos fechados, que as tags não conseguem expressar
func (s ServiceType) Validate() error {
	if s.Recurrence != "" && !s.Recurrence.Valid() {
		return ErrInvalidRecurrence
	}
	if s.Category != "" && !s.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

type ServiceTypePatch struct {
	Name             *string     `json:"nombre" validate:"omitempty,min=1"`
	Price            *float64    `json:"precio" validate:"omitempty,gte=0"`
	Description      *string     `json:"descripcion"`
	EstimatedMinutes *int        `json:"tiempoEstimado" validate:"omitempty,gt=0"`
	Recurrence       *Recurrence `json:"frecuencia"`
	Category         *Category   `json:"categoria"`
}

func (p ServiceTypePatch) Validate() error {
	if p.Recurrence != nil && *p.Recurrence != "" && !p.Recurrence.Valid() {
		return ErrInvalidRecurrence
	}
	if p.Category != nil && *p.Category != "" && !p.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

func (p ServiceTypePatch) Apply(s *ServiceType) {
	setString(&s.Name, p.Name)
	setString(&s.Description, p.Description)
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.EstimatedMinutes != nil {
		s.EstimatedMinutes = *p.EstimatedMinutes
	}
	if p.Recurrence != nil {
		s.Recurrence = *p.Recurrence
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
}
