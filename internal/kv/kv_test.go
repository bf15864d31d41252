package kv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func TestStore_Contract(t *testing.T) {
	ctx := context.Background()

	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(ctx, "pulcro_clientes")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, s.Set(ctx, "pulcro_clientes", []byte(`[{"id":"1"}]`)))
			v, err := s.Get(ctx, "pulcro_clientes")
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":"1"}]`, string(v))

			// sobrescreve a coleção inteira
			require.NoError(t, s.Set(ctx, "pulcro_clientes", []byte(`[]`)))
			v, err = s.Get(ctx, "pulcro_clientes")
			require.NoError(t, err)
			assert.Equal(t, "[]", string(v))

			require.NoError(t, s.Delete(ctx, "pulcro_clientes"))
			_, err = s.Get(ctx, "pulcro_clientes")
			assert.ErrorIs(t, err, ErrNotFound)

			// apagar chave inexistente não é erro
			assert.NoError(t, s.Delete(ctx, "nunca_existiu"))
		})
	}
}

func TestMemory_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	in := []byte("abc")
	require.NoError(t, m.Set(ctx, "k", in))
	in[0] = 'x'

	out, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))

	out[1] = 'y'
	again, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "pulcro.db")

	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "pulcro_initialized", []byte("true")))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Get(ctx, "pulcro_initialized")
	require.NoError(t, err)
	assert.Equal(t, "true", string(v))
}
