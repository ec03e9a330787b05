package localstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafeteriasoma/soma-api/internal/infrastructure/localstore"
)

func tempPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "localstore.json")
}

// Set/Get/Delete básicos con (nil, nil) para claves ausentes.
func TestFileStore_CicloBasico(t *testing.T) {
	store, err := localstore.NewFileStore(tempPath(t))
	require.NoError(t, err)

	v, err := store.Get("no-existe")
	require.NoError(t, err)
	assert.Nil(t, v, "clave ausente devuelve nil sin error")

	require.NoError(t, store.Set(localstore.KeyToken, []byte(`"abc123"`)))
	v, err = store.Get(localstore.KeyToken)
	require.NoError(t, err)
	assert.JSONEq(t, `"abc123"`, string(v))

	require.NoError(t, store.Delete(localstore.KeyToken))
	v, err = store.Get(localstore.KeyToken)
	require.NoError(t, err)
	assert.Nil(t, v)
}

// El snapshot es write-through: reabrir la misma ruta recupera los valores.
func TestFileStore_PersisteEntreAperturas(t *testing.T) {
	path := tempPath(t)

	store, err := localstore.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(localstore.KeyCartItems, []byte(`[{"productId":"1","quantity":2}]`)))

	reabierto, err := localstore.NewFileStore(path)
	require.NoError(t, err)
	v, err := reabierto.Get(localstore.KeyCartItems)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"productId":"1","quantity":2}]`, string(v))
}

// Un archivo corrupto no impide arrancar: se parte de un snapshot vacío.
func TestFileStore_ArchivoCorruptoSeDescarta(t *testing.T) {
	path := tempPath(t)
	require.NoError(t, os.WriteFile(path, []byte("esto no es JSON {"), 0o644))

	store, err := localstore.NewFileStore(path)
	require.NoError(t, err)

	v, err := store.Get(localstore.KeyUsers)
	require.NoError(t, err)
	assert.Nil(t, v)
}

// Delete de una clave inexistente no es error.
func TestFileStore_DeleteAusente(t *testing.T) {
	store, err := localstore.NewFileStore(tempPath(t))
	require.NoError(t, err)
	assert.NoError(t, store.Delete("nunca-existio"))
}
