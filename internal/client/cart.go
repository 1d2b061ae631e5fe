package client

import (
	"encoding/json"

	"github.com/ovenlight/bakery-api/internal/catalog"
)

const keyCart = "cartItems"

// CartItem is a product snapshot plus a quantity.  The snapshot is taken
// when the item is added so a later catalog change does not silently
// reprice a cart.
type CartItem struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Cart holds pending line items, persisted on every mutation.  It is purely
// client-side state; the server first sees its contents at checkout.
type Cart struct {
	store Storage
	items []CartItem
}

// NewCart binds a cart to its storage and restores any persisted items.
// A corrupt blob is discarded rather than wedging the client.
func NewCart(store Storage) (*Cart, error) {
	c := &Cart{store: store}
	raw, ok, err := store.Get(keyCart)
	if err != nil {
		return nil, err
	}
	if ok {
		if err := json.Unmarshal(raw, &c.items); err != nil {
			c.items = nil
		}
	}
	return c, nil
}

// Items returns a copy of the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Add puts one unit of a product in the cart, incrementing the quantity if
// the product is already there.
func (c *Cart) Add(p catalog.Product) error {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return c.save()
		}
	}
	c.items = append(c.items, CartItem{ID: p.ID, Name: p.Name, Price: p.Price, Quantity: 1})
	return c.save()
}

// Remove drops a product from the cart entirely.
func (c *Cart) Remove(id uint64) error {
	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	c.items = kept
	return c.save()
}

// SetQuantity updates a line's quantity; zero or less removes the line.
func (c *Cart) SetQuantity(id uint64, quantity int) error {
	if quantity <= 0 {
		return c.Remove(id)
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity = quantity
			return c.save()
		}
	}
	return nil
}

// Clear empties the cart, e.g. after a successful checkout.
func (c *Cart) Clear() error {
	c.items = nil
	return c.store.Delete(keyCart)
}

// Total sums price*quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// ItemCount sums the quantities over all lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) save() error {
	b, err := json.Marshal(c.items)
	if err != nil {
		return err
	}
	return c.store.Set(keyCart, b)
}
