package catalog

import (
	"context"

	"github.com/BruksfildServices01/pulcro-admin/internal/audit"
	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
	"github.com/BruksfildServices01/pulcro-admin/internal/validators"
)

// ======================================================
// CREATE CLIENT
// ======================================================

type CreateClient struct {
	st    *store.Store
	audit *audit.Dispatcher
}

func NewCreateClient(st *store.Store, audit *audit.Dispatcher) *CreateClient {
	return &CreateClient{st: st, audit: audit}
}

func (uc *CreateClient) Execute(ctx context.Context, userID string, draft models.Client) (models.Client, error) {
	if draft.TaxID != "" {
		if !validators.IsCUITValid(draft.TaxID) {
			return models.Client{}, httperr.ErrBusiness("invalid_cuit")
		}
		draft.TaxID = validators.FormatCUIT(draft.TaxID)
	}
	draft.Phone = validators.FormatPhoneAR(draft.Phone)

	c, err := uc.st.Clients.Create(ctx, draft)
	if err != nil {
		return models.Client{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "client_created",
		Entity:   "client",
		EntityID: c.ID,
	})
	return c, nil
}

// ======================================================
// UPDATE CLIENT
// ======================================================

type UpdateClient struct {
	st    *store.Store
	audit *audit.Dispatcher
}

func NewUpdateClient(st *store.Store, audit *audit.Dispatcher) *UpdateClient {
	return &UpdateClient{st: st, audit: audit}
}

// Execute altera o cadastro. Agendamentos já criados mantêm o endereço antigo.
func (uc *UpdateClient) Execute(ctx context.Context, userID, id string, patch models.ClientPatch) (models.Client, error) {
	if patch.TaxID != nil && *patch.TaxID != "" {
		if !validators.IsCUITValid(*patch.TaxID) {
			return models.Client{}, httperr.ErrBusiness("invalid_cuit")
		}
		formatted := validators.FormatCUIT(*patch.TaxID)
		patch.TaxID = &formatted
	}
	if patch.Phone != nil {
		formatted := validators.FormatPhoneAR(*patch.Phone)
		patch.Phone = &formatted
	}

	c, err := uc.st.Clients.Update(ctx, id, patch)
	if err != nil {
		return models.Client{}, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "client_updated",
		Entity:   "client",
		EntityID: c.ID,
	})
	return c, nil
}

// ======================================================
// DELETE CLIENT
// ======================================================

type DeleteClient struct {
	st    *store.Store
	audit *audit.Dispatcher
}

func NewDeleteClient(st *store.Store, audit *audit.Dispatcher) *DeleteClient {
	return &DeleteClient{st: st, audit: audit}
}

// Execute não verifica agendamentos: os serviços do cliente continuam e
// aparecem como "Cliente no encontrado".
func (uc *DeleteClient) Execute(ctx context.Context, userID, id string) error {
	if err := uc.st.Clients.Delete(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: id,
	})
	return nil
}
