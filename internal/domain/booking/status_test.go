package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, Status("Completado").Valid())
	assert.False(t, Status("").Valid())
}

func TestPriority_Valid(t *testing.T) {
	assert.True(t, PriorityUrgent.Valid())
	assert.False(t, Priority("Critica").Valid())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		errCode string
	}{
		{"programado para em curso", StatusScheduled, StatusInProgress, ""},
		{"em curso para realizado", StatusInProgress, StatusCompleted, ""},
		{"pendente para cancelado", StatusPending, StatusCancelled, ""},
		{"mesmo estado", StatusCompleted, StatusCompleted, ""},
		{"realizado é terminal", StatusCompleted, StatusScheduled, "invalid_status_transition"},
		{"cancelado é terminal", StatusCancelled, StatusInProgress, "invalid_status_transition"},
		{"em curso não volta", StatusInProgress, StatusScheduled, "invalid_status_transition"},
		{"estado desconhecido", StatusScheduled, Status("Perdido"), "invalid_status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.errCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tt.errCode), "got %v", err)
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
}
