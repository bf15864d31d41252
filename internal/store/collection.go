package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/pulcro-admin/internal/storage"
)

// Entity é satisfeita pelo ponteiro de cada modelo persistido
type Entity[T any] interface {
	*T
	Key() string
	Assign(id string, now time.Time)
	Touch(now time.Time)
}

// Patch é uma atualização parcial tipada
type Patch[T any] interface {
	Apply(*T)
}

type validatable interface {
	Validate() error
}

var validate = validator.New()

// Collection espelha em memória uma coleção persistida sob uma única chave.
// Toda mutação regrava a coleção inteira; se a gravação falhar a memória volta
// ao estado anterior.
type Collection[T any, PT Entity[T]] struct {
	mu      sync.RWMutex
	name    string
	adapter *storage.Adapter
	items   []T
	now     func() time.Time
	newID   func(time.Time) string
}

func newCollection[T any, PT Entity[T]](a *storage.Adapter, name string, now func() time.Time) *Collection[T, PT] {
	return &Collection[T, PT]{
		name:    name,
		adapter: a,
		items:   []T{},
		now:     now,
		newID:   NewID,
	}
}

// Reload relê a coleção do adaptador. Em falha mantém o conteúdo atual.
func (c *Collection[T, PT]) Reload(ctx context.Context) error {
	items, err := storage.Read(ctx, c.adapter, c.name, []T{})
	if err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// List devolve uma cópia da coleção em ordem de inserção
func (c *Collection[T, PT]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T, PT]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T, PT]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Any indica se algum item satisfaz pred
func (c *Collection[T, PT]) Any(pred func(T) bool) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, it := range c.items {
		if pred(it) {
			return true
		}
	}
	return false
}

// Create atribui id e datas ao rascunho, acrescenta e persiste
func (c *Collection[T, PT]) Create(ctx context.Context, draft T) (T, error) {
	return c.create(ctx, draft, 0)
}

// CreateCapped faz o mesmo que Create, mas mantém só os keep itens mais
// recentes. Os mais antigos saem na mesma gravação.
func (c *Collection[T, PT]) CreateCapped(ctx context.Context, draft T, keep int) (T, error) {
	return c.create(ctx, draft, keep)
}

func (c *Collection[T, PT]) create(ctx context.Context, draft T, keep int) (T, error) {
	if err := check(draft); err != nil {
		var zero T
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	PT(&draft).Assign(c.newID(now), now)

	prev := c.items
	if keep > 0 && len(prev) >= keep {
		prev = prev[len(prev)-keep+1:]
	}
	next := make([]T, len(prev), len(prev)+1)
	copy(next, prev)
	next = append(next, draft)

	if err := c.persist(ctx, next); err != nil {
		var zero T
		return zero, err
	}
	c.items = next
	return draft, nil
}

// Update aplica o patch ao item com o id informado
func (c *Collection[T, PT]) Update(ctx context.Context, id string, patch Patch[T]) (T, error) {
	var zero T

	if err := check(patch); err != nil {
		return zero, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return zero, ErrNotFound
	}

	updated := c.items[i]
	patch.Apply(&updated)
	if err := check(updated); err != nil {
		return zero, err
	}
	PT(&updated).Touch(c.now())

	next := make([]T, len(c.items))
	copy(next, c.items)
	next[i] = updated

	if err := c.persist(ctx, next); err != nil {
		return zero, err
	}
	c.items = next
	return updated, nil
}

// Delete remove o item. Id inexistente devolve ErrNotFound sem alterar nada.
func (c *Collection[T, PT]) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}

	next := make([]T, 0, len(c.items)-1)
	next = append(next, c.items[:i]...)
	next = append(next, c.items[i+1:]...)

	if err := c.persist(ctx, next); err != nil {
		return err
	}
	c.items = next
	return nil
}

func (c *Collection[T, PT]) persist(ctx context.Context, items []T) error {
	return storage.Write(ctx, c.adapter, c.name, items)
}

func (c *Collection[T, PT]) indexOf(id string) int {
	for i := range c.items {
		if PT(&c.items[i]).Key() == id {
			return i
		}
	}
	return -1
}

func check(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if vv, ok := v.(validatable); ok {
		if err := vv.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}
