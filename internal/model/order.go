package model

import (
	"encoding/json"
	"time"
)

// Order status values.  The set is fixed but transitions are not guarded:
// an admin may move an order from any status to any other, and the status
// update endpoint stores whatever string it receives.  Validating against
// this set is a pending product decision; the constants exist for clients
// and for that eventual check.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Payment methods offered at checkout.  Presence of the field is validated
// on order creation; the value itself is stored as sent.
const (
	PaymentCreditCard = "credit_card"
	PaymentDebitCard  = "debit_card"
	PaymentPix        = "pix"
	PaymentCash       = "cash"
)

// OrderItem is one line of an order: a product snapshot taken from the cart
// at checkout time.  Price is the unit price when the order was placed, so
// later catalog changes never rewrite order history.
type OrderItem struct {
	ID       uint64  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order mirrors the `orders` table.  Items holds the decoded line items;
// the table stores them as a single JSON text column (see EncodeItems).
// TotalAmount is taken from the client at checkout and is not recomputed
// server-side.
type Order struct {
	ID              uint64      `json:"id"`
	CustomerID      uint64      `json:"customer_id"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	DeliveryAddress string      `json:"delivery_address"`
	PaymentMethod   string      `json:"payment_method"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

// AdminOrder is an Order joined with the owning customer's name and email,
// as returned by the admin order listing.
type AdminOrder struct {
	Order
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
}

// EncodeItems serializes line items into the blob stored in orders.items.
func EncodeItems(items []OrderItem) (string, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeItems parses the orders.items blob back into line items.
func DecodeItems(blob string) ([]OrderItem, error) {
	var items []OrderItem
	if err := json.Unmarshal([]byte(blob), &items); err != nil {
		return nil, err
	}
	return items, nil
}
