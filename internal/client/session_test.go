package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	fs, err := NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	return fs
}

func TestSessionLoginPersistsAcrossRestart(t *testing.T) {
	store := newTestStore(t)

	s, err := NewSession(store)
	require.NoError(t, err)
	assert.False(t, s.Authenticated())

	u := User{ID: 7, Name: "Ana", Email: "ana@example.com"}
	require.NoError(t, s.Login(u, "tok-123", "customer"))
	assert.True(t, s.Authenticated())

	// Simulate an app restart by rebuilding the session from the same store.
	restored, err := NewSession(store)
	require.NoError(t, err)
	require.True(t, restored.Authenticated())
	assert.Equal(t, "tok-123", restored.Token)
	assert.Equal(t, "customer", restored.Role)
	assert.Equal(t, u, *restored.User)
}

func TestSessionLogoutClearsStateButNotCart(t *testing.T) {
	store := newTestStore(t)

	s, err := NewSession(store)
	require.NoError(t, err)
	require.NoError(t, s.Login(User{ID: 1, Email: "a@b.c"}, "tok", "customer"))

	cart, err := NewCart(store)
	require.NoError(t, err)
	require.NoError(t, cart.Add(testProduct(1, "Bolo de Chocolate", 120)))

	require.NoError(t, s.Logout())
	assert.False(t, s.Authenticated())

	restored, err := NewSession(store)
	require.NoError(t, err)
	assert.False(t, restored.Authenticated())

	// The cart is independent of the session and survives logout.
	restoredCart, err := NewCart(store)
	require.NoError(t, err)
	assert.Equal(t, 1, restoredCart.ItemCount())
}

func TestSessionUpdateUser(t *testing.T) {
	store := newTestStore(t)

	s, err := NewSession(store)
	require.NoError(t, err)
	require.NoError(t, s.Login(User{ID: 1, Name: "Ana", Email: "a@b.c"}, "tok", "customer"))

	require.NoError(t, s.UpdateUser(User{ID: 1, Name: "Ana Maria", Email: "a@b.c", City: "Recife"}))

	restored, err := NewSession(store)
	require.NoError(t, err)
	require.NotNil(t, restored.User)
	assert.Equal(t, "Ana Maria", restored.User.Name)
	assert.Equal(t, "Recife", restored.User.City)
}

func TestSessionPartialStateIsLoggedOut(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set(keyToken, []byte(`"tok"`)))

	s, err := NewSession(store)
	require.NoError(t, err)
	assert.False(t, s.Authenticated())
}
