package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/pulcro-admin/internal/kv"
	"github.com/BruksfildServices01/pulcro-admin/internal/log"
	"github.com/BruksfildServices01/pulcro-admin/internal/models"
)

// brokenKV simula cota estourada / backend fora do ar
type brokenKV struct {
	kv.Store
	failSet bool
	failGet bool
}

var errQuota = errors.New("quota exceeded")

func (b *brokenKV) Get(ctx context.Context, key string) ([]byte, error) {
	if b.failGet {
		return nil, errQuota
	}
	return b.Store.Get(ctx, key)
}

func (b *brokenKV) Set(ctx context.Context, key string, value []byte) error {
	if b.failSet {
		return errQuota
	}
	return b.Store.Set(ctx, key, value)
}

func init() {
	log.SetOutput(io.Discard)
}

var seedNow = time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

func TestRead_MissingKeyReturnsDefault(t *testing.T) {
	a := New(kv.NewMemory(), "")

	got, err := Read(context.Background(), a, KeyClients, []models.Client{})
	require.NoError(t, err)
	assert.Empty(t, got)

	flag, err := Read(context.Background(), a, KeyInitialized, false)
	require.NoError(t, err)
	assert.False(t, flag)
}

func TestRead_CorruptPayload(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()
	require.NoError(t, mem.Set(ctx, KeyClients, []byte("{not json")))

	a := New(mem, "")
	got, err := Read(ctx, a, KeyClients, []models.Client{})

	assert.Empty(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageFailure)

	var serr *Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "decode", serr.Op)
	assert.Equal(t, KeyClients, serr.Key)
}

func TestRead_BackendFailure(t *testing.T) {
	a := New(&brokenKV{Store: kv.NewMemory(), failGet: true}, "")

	_, err := Read(context.Background(), a, KeyTeams, []models.Team(nil))
	assert.ErrorIs(t, err, ErrStorageFailure)
	assert.ErrorIs(t, err, errQuota)
}

func TestWrite_FailureIsReported(t *testing.T) {
	a := New(&brokenKV{Store: kv.NewMemory(), failSet: true}, "")

	err := Write(context.Background(), a, KeyTeams, []models.Team{{ID: "1"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStorageFailure)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	ctx := context.Background()
	a := New(kv.NewMemory(), "")

	in := []models.Client{{ID: "1", Name: "Café Tortoni", CreatedAt: seedNow, UpdatedAt: seedNow}}
	require.NoError(t, Write(ctx, a, KeyClients, in))

	out, err := Read(ctx, a, KeyClients, []models.Client{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Café Tortoni", out[0].Name)
	assert.True(t, seedNow.Equal(out[0].CreatedAt))
}

func TestPrefix_NamespacesKeys(t *testing.T) {
	ctx := context.Background()
	mem := kv.NewMemory()

	a := New(mem, "sucursal1:")
	require.NoError(t, Write(ctx, a, KeyInitialized, true))

	_, err := mem.Get(ctx, KeyInitialized)
	assert.ErrorIs(t, err, kv.ErrNotFound)

	raw, err := mem.Get(ctx, "sucursal1:"+KeyInitialized)
	require.NoError(t, err)
	assert.Equal(t, "true", string(raw))
}

func TestInitializeOnce_Idempotent(t *testing.T) {
	ctx := context.Background()
	a := New(kv.NewMemory(), "")

	seeded, err := a.InitializeOnce(ctx, seedNow)
	require.NoError(t, err)
	assert.True(t, seeded)

	clients, err := Read(ctx, a, KeyClients, []models.Client{})
	require.NoError(t, err)
	require.Len(t, clients, 5)

	// alterações depois do seed não podem ser sobrescritas
	clients = clients[:2]
	require.NoError(t, Write(ctx, a, KeyClients, clients))

	for i := 0; i < 3; i++ {
		seeded, err = a.InitializeOnce(ctx, seedNow.AddDate(0, 1, 0))
		require.NoError(t, err)
		assert.False(t, seeded)
	}

	clients, err = Read(ctx, a, KeyClients, []models.Client{})
	require.NoError(t, err)
	assert.Len(t, clients, 2)
}

func TestInitializeOnce_RetriesAfterFailure(t *testing.T) {
	ctx := context.Background()
	broken := &brokenKV{Store: kv.NewMemory(), failSet: true}
	a := New(broken, "")

	_, err := a.InitializeOnce(ctx, seedNow)
	require.ErrorIs(t, err, ErrStorageFailure)

	broken.failSet = false
	seeded, err := a.InitializeOnce(ctx, seedNow)
	require.NoError(t, err)
	assert.True(t, seeded)
}

func TestSeedData_Shape(t *testing.T) {
	ds := SeedData(seedNow)

	require.Len(t, ds.Users, 2)
	assert.True(t, ds.Users[0].IsAdmin())
	assert.False(t, ds.Users[1].IsAdmin())
	assert.Len(t, ds.Clients, 5)
	assert.Len(t, ds.ServiceTypes, 5)
	assert.Len(t, ds.Teams, 4)
	require.Len(t, ds.Bookings, 6)

	assert.Equal(t, "2025-07-02", ds.Bookings[0].Date)
	assert.Equal(t, "2025-07-15", ds.Bookings[5].Date)

	ids := func(n int, id func(i int) string) map[string]bool {
		m := map[string]bool{}
		for i := 0; i < n; i++ {
			m[id(i)] = true
		}
		return m
	}
	clients := ids(len(ds.Clients), func(i int) string { return ds.Clients[i].ID })
	types := ids(len(ds.ServiceTypes), func(i int) string { return ds.ServiceTypes[i].ID })
	teams := ids(len(ds.Teams), func(i int) string { return ds.Teams[i].ID })

	for _, b := range ds.Bookings {
		assert.True(t, clients[b.ClientID], "cliente %s", b.ClientID)
		assert.True(t, types[b.ServiceTypeID], "tipo %s", b.ServiceTypeID)
		assert.True(t, teams[b.TeamID], "equipe %s", b.TeamID)
		assert.NoError(t, b.Validate())
	}
}

func TestCurrentUser(t *testing.T) {
	ctx := context.Background()
	a := New(kv.NewMemory(), "")

	u, err := a.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, a.SetCurrentUser(ctx, &models.User{ID: "1", Username: "admin", Level: models.LevelAdmin}))
	u, err = a.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Username)

	require.NoError(t, a.SetCurrentUser(ctx, nil))
	u, err = a.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	a := New(kv.NewMemory(), "")

	_, err := a.InitializeOnce(ctx, seedNow)
	require.NoError(t, err)
	require.NoError(t, a.ClearAll(ctx))

	done, err := Read(ctx, a, KeyInitialized, false)
	require.NoError(t, err)
	assert.False(t, done)

	seeded, err := a.InitializeOnce(ctx, seedNow)
	require.NoError(t, err)
	assert.True(t, seeded)
}
