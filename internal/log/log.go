package log

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields = logrus.Fields

type contextKey string

// CorrelationIDKey guarda o ID de correlação da requisição no contexto
const CorrelationIDKey contextKey = "correlation_id"

var base = logrus.New()

// IsDevelopment retorna verdadeiro quando APP_ENV está vazio ou é dev
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// Setup configura nível e formato. Fora de desenvolvimento os logs saem em JSON.
func Setup(level string) {
	if IsDevelopment() {
		base.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			PadLevelText:  true,
		})
	} else {
		base.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	base.SetLevel(lvl)
}

// SetOutput redireciona a saída (usado nos testes)
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// L devolve uma entry sem campos
func L() *logrus.Entry {
	return logrus.NewEntry(base)
}

func WithField(key string, value any) *logrus.Entry {
	return base.WithField(key, value)
}

func WithFields(fields Fields) *logrus.Entry {
	return base.WithFields(fields)
}

func WithError(err error) *logrus.Entry {
	return base.WithError(err)
}

// WithCorrelationID adiciona um ID de correlação novo ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	id := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, id), id
}

func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return id
	}
	return ""
}

// ForContext cria uma entry com o ID de correlação do contexto, se houver
func ForContext(ctx context.Context) *logrus.Entry {
	if id := GetCorrelationID(ctx); id != "" {
		return base.WithField(string(CorrelationIDKey), id)
	}
	return L()
}
