package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/pulcro-admin/internal/audit"
	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

// ======================================================
// LOGIN
// ======================================================

type Login struct {
	st    *store.Store
	audit *audit.Dispatcher
}

func NewLogin(st *store.Store, audit *audit.Dispatcher) *Login {
	return &Login{st: st, audit: audit}
}

// Execute confere as credenciais (usuário sem diferenciar maiúsculas) e grava
// o usuário logado no slot de sessão.
func (uc *Login) Execute(ctx context.Context, username, password string) (models.User, error) {
	u, ok := findByUsername(uc.st.Users.List(), username)
	if !ok || !passwordMatches(u.Password, password) {
		return models.User{}, httperr.ErrBusiness("invalid_credentials")
	}

	if err := uc.st.Adapter.SetCurrentUser(ctx, &u); err != nil {
		return models.User{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   u.ID,
		Action:   "login",
		Entity:   "user",
		EntityID: u.ID,
	})
	return u, nil
}

// ======================================================
// LOGOUT
// ======================================================

type Logout struct {
	st    *store.Store
	audit *audit.Dispatcher
}

func NewLogout(st *store.Store, audit *audit.Dispatcher) *Logout {
	return &Logout{st: st, audit: audit}
}

func (uc *Logout) Execute(ctx context.Context, userID string) error {
	if err := uc.st.Adapter.ClearCurrentUser(ctx); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "logout",
		Entity:   "user",
		EntityID: userID,
	})
	return nil
}

func findByUsername(users []models.User, username string) (models.User, bool) {
	username = strings.TrimSpace(username)
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return models.User{}, false
}
