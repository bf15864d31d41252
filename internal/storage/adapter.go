package storage

import (
	"context"
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/BruksfildServices01/pulcro-admin/internal/kv"
	"github.com/BruksfildServices01/pulcro-admin/internal/log"
)

// Chaves fixas, uma por coleção
const (
	KeyUsers        = "pulcro_users"
	KeyClients      = "pulcro_clientes"
	KeyServiceTypes = "pulcro_tipos_servicio"
	KeyTeams        = "pulcro_equipos"
	KeyBookings     = "pulcro_servicios"
	KeyCurrentUser  = "pulcro_current_user"
	KeyInitialized  = "pulcro_initialized"
	KeyAuditLogs    = "pulcro_auditoria"
)

var allKeys = []string{
	KeyUsers,
	KeyClients,
	KeyServiceTypes,
	KeyTeams,
	KeyBookings,
	KeyCurrentUser,
	KeyInitialized,
	KeyAuditLogs,
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Adapter traduz coleções nomeadas de/para o backend chave-valor
type Adapter struct {
	kv     kv.Store
	prefix string
}

func New(store kv.Store, prefix string) *Adapter {
	return &Adapter{kv: store, prefix: prefix}
}

func (a *Adapter) key(name string) string {
	return a.prefix + name
}

// Read devolve def quando a chave não existe. Em falha do backend ou payload
// corrompido devolve def junto com um *Error.
func Read[T any](ctx context.Context, a *Adapter, name string, def T) (T, error) {
	raw, err := a.kv.Get(ctx, a.key(name))
	if errors.Is(err, kv.ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return def, a.fail(ctx, "read", name, err)
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def, a.fail(ctx, "decode", name, err)
	}
	return v, nil
}

// Write serializa e grava a coleção inteira
func Write[T any](ctx context.Context, a *Adapter, name string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return a.fail(ctx, "encode", name, err)
	}
	if err := a.kv.Set(ctx, a.key(name), raw); err != nil {
		return a.fail(ctx, "write", name, err)
	}
	return nil
}

// Remove apaga uma chave; ausência não é erro
func (a *Adapter) Remove(ctx context.Context, name string) error {
	if err := a.kv.Delete(ctx, a.key(name)); err != nil {
		return a.fail(ctx, "delete", name, err)
	}
	return nil
}

// ClearAll apaga todas as chaves do namespace
func (a *Adapter) ClearAll(ctx context.Context) error {
	for _, k := range allKeys {
		if err := a.Remove(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

func (a *Adapter) fail(ctx context.Context, op, name string, err error) error {
	serr := &Error{Op: op, Key: a.key(name), Err: err}
	log.ForContext(ctx).
		WithError(err).
		WithField("key", serr.Key).
		Errorf("storage %s failed", op)
	return serr
}

// Backend expõe o kv.Store por baixo do adaptador
func (a *Adapter) Backend() kv.Store {
	return a.kv
}
