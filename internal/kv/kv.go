// Package kv reúne os backends chave-valor síncronos onde o adaptador de
// persistência grava as coleções inteiras.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound é devolvido por Get quando a chave nunca foi gravada
var ErrNotFound = errors.New("kv: key not found")

type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
