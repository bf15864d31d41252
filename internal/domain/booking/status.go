package booking

import "github.com/BruksfildServices01/pulcro-admin/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusScheduled  Status = "Programado"
	StatusInProgress Status = "En Curso"
	StatusCompleted  Status = "Realizado"
	StatusCancelled  Status = "Cancelado"
	StatusPending    Status = "Pendiente"
)

// Statuses lista os estados na ordem exibida pelo painel
var Statuses = []Status{
	StatusScheduled,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
	StatusPending,
}

func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// Terminal indica estados sem saída no grafo de transições
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Priority
// ===============================

type Priority string

const (
	PriorityLow    Priority = "Baja"
	PriorityMedium Priority = "Media"
	PriorityHigh   Priority = "Alta"
	PriorityUrgent Priority = "Urgente"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

func (p Priority) Valid() bool {
	for _, pr := range Priorities {
		if p == pr {
			return true
		}
	}
	return false
}

// ===============================
// Transitions
// ===============================

var transitions = map[Status][]Status{
	StatusPending:    {StatusScheduled, StatusCancelled},
	StatusScheduled:  {StatusInProgress, StatusCompleted, StatusCancelled, StatusPending},
	StatusInProgress: {StatusCompleted, StatusCancelled},
}

// CanTransition valida a mudança de estado quando o grafo estrito está ligado.
// Manter o mesmo estado é sempre permitido.
func CanTransition(from, to Status) error {
	if !to.Valid() {
		return httperr.ErrBusiness("invalid_status")
	}
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_status_transition")
}

// InitialStatus é o estado usado quando a criação não informa um
func InitialStatus() Status {
	return StatusScheduled
}

// DefaultPriority é a prioridade usada quando a criação não informa uma
func DefaultPriority() Priority {
	return PriorityMedium
}
