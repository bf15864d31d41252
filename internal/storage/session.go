package storage

import (
	"context"

	"github.com/BruksfildServices01/pulcro-admin/internal/models"
)

// CurrentUser devolve o registro completo do usuário logado, ou nil
func (a *Adapter) CurrentUser(ctx context.Context) (*models.User, error) {
	return Read[*models.User](ctx, a, KeyCurrentUser, nil)
}

// SetCurrentUser grava o usuário logado; nil limpa o slot
func (a *Adapter) SetCurrentUser(ctx context.Context, u *models.User) error {
	return Write(ctx, a, KeyCurrentUser, u)
}

func (a *Adapter) ClearCurrentUser(ctx context.Context) error {
	return a.Remove(ctx, KeyCurrentUser)
}
