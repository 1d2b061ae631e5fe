// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderPlacedEvent is published when a customer completes checkout.  It
// carries enough for kitchen or analytics consumers to act without querying
// the primary database.
type OrderPlacedEvent struct {
	OrderID         uint64  `json:"order_id"`
	CustomerID      uint64  `json:"customer_id"`
	CustomerEmail   string  `json:"customer_email"`
	TotalAmount     float64 `json:"total_amount"`
	DeliveryAddress string  `json:"delivery_address"`
	PaymentMethod   string  `json:"payment_method"`
	ItemCount       int     `json:"item_count"`
	PlacedAt        string  `json:"placed_at"`
}

// OrderStatusChangedEvent is published when an admin moves an order to a
// new status.
type OrderStatusChangedEvent struct {
	OrderID   uint64 `json:"order_id"`
	Status    string `json:"status"`
	ChangedAt string `json:"changed_at"`
}
