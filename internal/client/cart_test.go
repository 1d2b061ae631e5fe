package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenlight/bakery-api/internal/catalog"
)

func testProduct(id uint64, name string, price float64) catalog.Product {
	return catalog.Product{ID: id, Name: name, Price: price}
}

func TestCartAddIncrementsExisting(t *testing.T) {
	cart, err := NewCart(newTestStore(t))
	require.NoError(t, err)

	p := testProduct(1, "Bolo Coração", 150)
	require.NoError(t, cart.Add(p))
	require.NoError(t, cart.Add(p))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, cart.ItemCount())
	assert.Equal(t, 300.0, cart.Total())
}

func TestCartRemoveAndSetQuantity(t *testing.T) {
	cart, err := NewCart(newTestStore(t))
	require.NoError(t, err)

	require.NoError(t, cart.Add(testProduct(1, "Bolo Coração", 150)))
	require.NoError(t, cart.Add(testProduct(4, "Bolo de Chocolate", 120)))

	require.NoError(t, cart.SetQuantity(4, 3))
	assert.Equal(t, 150.0+3*120.0, cart.Total())

	// Zero quantity removes the line.
	require.NoError(t, cart.SetQuantity(1, 0))
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, uint64(4), cart.Items()[0].ID)

	require.NoError(t, cart.Remove(4))
	assert.Empty(t, cart.Items())
	assert.Equal(t, 0.0, cart.Total())
}

func TestCartPersistsAcrossRestart(t *testing.T) {
	store := newTestStore(t)

	cart, err := NewCart(store)
	require.NoError(t, err)
	require.NoError(t, cart.Add(testProduct(5, "Bolo de Morango", 140)))
	require.NoError(t, cart.Add(testProduct(5, "Bolo de Morango", 140)))

	restored, err := NewCart(store)
	require.NoError(t, err)
	require.Len(t, restored.Items(), 1)
	assert.Equal(t, 2, restored.Items()[0].Quantity)
	assert.Equal(t, 280.0, restored.Total())
}

func TestCartClear(t *testing.T) {
	store := newTestStore(t)

	cart, err := NewCart(store)
	require.NoError(t, err)
	require.NoError(t, cart.Add(testProduct(2, "Bolo Retangular 27x18cm", 170)))
	require.NoError(t, cart.Clear())

	restored, err := NewCart(store)
	require.NoError(t, err)
	assert.Empty(t, restored.Items())
}

func TestCartCorruptBlobDiscarded(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Set(keyCart, []byte(`"not an array"`)))

	cart, err := NewCart(store)
	require.NoError(t, err)
	assert.Empty(t, cart.Items())
}
