package catalog

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pulcro-admin/internal/audit"
	domain "github.com/BruksfildServices01/pulcro-admin/internal/domain/booking"
	"github.com/BruksfildServices01/pulcro-admin/internal/httperr"
	"github.com/BruksfildServices01/pulcro-admin/internal/kv"
	"github.com/BruksfildServices01/pulcro-admin/internal/log"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
	"github.com/BruksfildServices01/pulcro-admin/internal/query"
	"github.com/BruksfildServices01/pulcro-admin/internal/storage"
	"github.com/BruksfildServices01/pulcro-admin/internal/store"
)

func setup(t *testing.T) (*store.Store, *audit.Dispatcher) {
	t.Helper()
	log.SetOutput(io.Discard)

	st, err := store.Open(context.Background(), storage.New(kv.NewMemory(), ""))
	require.NoError(t, err)

	d := audit.NewDispatcher(audit.New(st.AuditLogs, audit.DefaultRetention))
	t.Cleanup(d.Close)
	return st, d
}

func seedRefs(t *testing.T, st *store.Store) (models.Client, models.ServiceType, models.Team, models.Booking) {
	t.Helper()
	ctx := context.Background()

	c, err := st.Clients.Create(ctx, models.Client{Name: "Hotel Palermo Plaza", Address: "Av. Santa Fe 1234"})
	require.NoError(t, err)
	s, err := st.ServiceTypes.Create(ctx, models.ServiceType{Name: "Inspección Técnica", Price: 8000, EstimatedMinutes: 60})
	require.NoError(t, err)
	tm, err := st.Teams.Create(ctx, models.Team{Name: "Equipo Gamma", Leader: "Roberto", Active: true})
	require.NoError(t, err)
	b, err := st.Bookings.Create(ctx, models.Booking{
		ClientID: c.ID, ServiceTypeID: s.ID, TeamID: tm.ID,
		Date: "2025-07-05", Time: "16:00",
		Status: domain.StatusScheduled, Priority: domain.PriorityLow,
	})
	require.NoError(t, err)
	return c, s, tm, b
}

func TestDeleteTeam_Referenced(t *testing.T) {
	st, d := setup(t)
	_, _, tm, b := seedRefs(t, st)

	err := NewDeleteTeam(st, d).Execute(context.Background(), "1", tm.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrReferenced))

	_, ok := st.Teams.Get(tm.ID)
	assert.True(t, ok)
	_, ok = st.Bookings.Get(b.ID)
	assert.True(t, ok)
}

func TestDeleteTeam_Unreferenced(t *testing.T) {
	st, d := setup(t)
	ctx := context.Background()
	_, _, tm, b := seedRefs(t, st)

	require.NoError(t, st.Bookings.Delete(ctx, b.ID))
	require.NoError(t, NewDeleteTeam(st, d).Execute(ctx, "1", tm.ID))
	assert.ErrorIs(t, NewDeleteTeam(st, d).Execute(ctx, "1", tm.ID), store.ErrNotFound)
}

func TestDeleteServiceType_Referenced(t *testing.T) {
	st, d := setup(t)
	_, s, _, _ := seedRefs(t, st)

	err := NewDeleteServiceType(st, d).Execute(context.Background(), "1", s.ID)
	assert.ErrorIs(t, err, ErrReferenced)

	_, ok := st.ServiceTypes.Get(s.ID)
	assert.True(t, ok)
}

func TestDeleteClient_IsNotGuarded(t *testing.T) {
	st, d := setup(t)
	c, _, _, b := seedRefs(t, st)

	require.NoError(t, NewDeleteClient(st, d).Execute(context.Background(), "1", c.ID))

	rows := query.DetailedBookings(st)
	require.Len(t, rows, 1)
	assert.Equal(t, b.ID, rows[0].ID)
	assert.Equal(t, query.MissingClient, rows[0].ClientName)
}

func TestCreateClient_Normalizes(t *testing.T) {
	st, d := setup(t)

	c, err := NewCreateClient(st, d).Execute(context.Background(), "1", models.Client{
		Name:  "Panadería La Baguette",
		Phone: "11 4801 2345",
		TaxID: "20123456786",
	})
	require.NoError(t, err)

	assert.Equal(t, "+5411-4801-2345", c.Phone)
	assert.Equal(t, "20-12345678-6", c.TaxID)
}

func TestCreateClient_InvalidCUIT(t *testing.T) {
	st, d := setup(t)

	_, err := NewCreateClient(st, d).Execute(context.Background(), "1", models.Client{
		Name:  "Pizzería",
		TaxID: "20-12345678-5",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_cuit"))
	assert.Zero(t, st.Clients.Len())
}

func TestUpdateClient(t *testing.T) {
	st, d := setup(t)
	ctx := context.Background()
	c, _, _, _ := seedRefs(t, st)

	cuit := "30712345671"
	up, err := NewUpdateClient(st, d).Execute(ctx, "1", c.ID, models.ClientPatch{TaxID: &cuit})
	require.NoError(t, err)
	assert.Equal(t, "30-71234567-1", up.TaxID)

	_, err = NewUpdateClient(st, d).Execute(ctx, "1", "nope", models.ClientPatch{})
	assert.ErrorIs(t, err, store.ErrNotFound)

}
