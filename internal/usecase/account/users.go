package account

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/pulcro-admin/internal/audit"
	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

// MainAdmin é a conta que nunca pode ser removida
const MainAdmin = "admin"

// ======================================================
// CREATE USER
// ======================================================

type CreateUser struct {
	st    *store.Store
	audit *audit.Dispatcher
}

func NewCreateUser(st *store.Store, audit *audit.Dispatcher) *CreateUser {
	return &CreateUser{st: st, audit: audit}
}

func (uc *CreateUser) Execute(ctx context.Context, actorID string, draft models.User) (models.User, error) {
	draft.Username = strings.TrimSpace(draft.Username)
	if draft.Level == "" {
		draft.Level = models.LevelUser
	}
	if draft.Password == "" {
		return models.User{}, httperr.ErrBusiness("password_required")
	}

	hashed, err := hashPassword(draft.Password)
	if err != nil {
		return models.User{}, err
	}
	draft.Password = hashed

	uc.st.Refs.Lock()
	defer uc.st.Refs.Unlock()

	if _, taken := findByUsername(uc.st.Users.List(), draft.Username); taken {
		return models.User{}, httperr.ErrBusiness("username_already_exists")
	}

	u, err := uc.st.Users.Create(ctx, draft)
	if err != nil {
		return models.User{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: u.ID,
		Metadata: map[string]any{"username": u.Username, "nivel": u.Level},
	})
	return u, nil
}

// ======================================================
// UPDATE USER
// ======================================================

type UpdateUser struct {
	st    *store.Store
	audit *audit.Dispatcher
}

func NewUpdateUser(st *store.Store, audit *audit.Dispatcher) *UpdateUser {
	return &UpdateUser{st: st, audit: audit}
}

func (uc *UpdateUser) Execute(ctx context.Context, actorID, id string, patch models.UserPatch) (models.User, error) {
	uc.st.Refs.Lock()
	defer uc.st.Refs.Unlock()

	current, ok := uc.st.Users.Get(id)
	if !ok {
		return models.User{}, store.ErrNotFound
	}

	if patch.Username != nil {
		name := strings.TrimSpace(*patch.Username)
		patch.Username = &name

		if other, taken := findByUsername(uc.st.Users.List(), name); taken && other.ID != id {
			return models.User{}, httperr.ErrBusiness("username_already_exists")
		}
		if strings.EqualFold(current.Username, MainAdmin) && !strings.EqualFold(name, MainAdmin) {
			return models.User{}, httperr.ErrBusiness("cannot_rename_main_admin")
		}
	}

	if patch.Level != nil && *patch.Level != models.LevelAdmin && id == actorID {
		return models.User{}, httperr.ErrBusiness("cannot_demote_self")
	}

	if patch.Password != nil && *patch.Password != "" {
		hashed, err := hashPassword(*patch.Password)
		if err != nil {
			return models.User{}, err
		}
		patch.Password = &hashed
	}

	u, err := uc.st.Users.Update(ctx, id, patch)
	if err != nil {
		return models.User{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: u.ID,
	})
	return u, nil
}

// ======================================================
// DELETE USER
// ======================================================

type DeleteUser struct {
	st    *store.Store
	audit *audit.Dispatcher
}

func NewDeleteUser(st *store.Store, audit *audit.Dispatcher) *DeleteUser {
	return &DeleteUser{st: st, audit: audit}
}

func (uc *DeleteUser) Execute(ctx context.Context, actorID, id string) error {
	if id == actorID {
		return httperr.ErrBusiness("cannot_delete_self")
	}

	u, ok := uc.st.Users.Get(id)
	if !ok {
		return store.ErrNotFound
	}
	if strings.EqualFold(u.Username, MainAdmin) {
		return httperr.ErrBusiness("cannot_delete_main_admin")
	}

	if err := uc.st.Users.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: id,
		Metadata: map[string]string{"username": u.Username},
	})
	return nil
}
