package audit

import (
	"context"

	jsoniter "github.com/json-iterator/go"

	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultRetention é quantos registros de auditoria ficam guardados
const DefaultRetention = 5000

type Logger struct {
	logs *store.AuditLogs
	keep int
}

// New cria o logger. keep <= 0 usa DefaultRetention; os registros mais
// antigos são descartados quando o limite é atingido.
func New(logs *store.AuditLogs, keep int) *Logger {
	if keep <= 0 {
		keep = DefaultRetention
	}
	return &Logger{logs: logs, keep: keep}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	_, err := l.logs.CreateCapped(ctx, models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}, l.keep)
	return err
}
