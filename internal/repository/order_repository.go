package repository

import (
	"context"
	"database/sql"

	"github.com/ovenlight/bakery-api/internal/model"
)

type OrderRepo struct{ DB *sql.DB }

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{DB: db} }

// OrderStats aggregates over the whole orders table.  Revenue and average
// are zero when no orders exist.
type OrderStats struct {
	TotalOrders       int64
	TotalRevenue      float64
	TotalCustomers    int64
	AverageOrderValue float64
}

// Create inserts an order and returns its ID.  Items arrive pre-encoded as
// the JSON blob stored in orders.items; the total is stored as received.
func (r *OrderRepo) Create(ctx context.Context, customerID uint64, itemsBlob string, total float64, deliveryAddress, paymentMethod string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO orders (customer_id, items, total_amount, delivery_address, payment_method) VALUES (?,?,?,?,?)",
		customerID, itemsBlob, total, deliveryAddress, paymentMethod)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByCustomer returns a customer's orders, newest first, with line items
// decoded from the blob.
func (r *OrderRepo) ListByCustomer(ctx context.Context, customerID uint64) ([]model.Order, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,customer_id,items,total_amount,delivery_address,payment_method,status,created_at FROM orders WHERE customer_id=? ORDER BY created_at DESC",
		customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var o model.Order
		var blob string
		if err := rows.Scan(&o.ID, &o.CustomerID, &blob, &o.TotalAmount, &o.DeliveryAddress, &o.PaymentMethod, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		if o.Items, err = model.DecodeItems(blob); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// ListAllWithCustomer returns every order joined with the owning customer's
// name and email, newest first.
func (r *OrderRepo) ListAllWithCustomer(ctx context.Context) ([]model.AdminOrder, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT o.id,o.customer_id,o.items,o.total_amount,o.delivery_address,o.payment_method,o.status,o.created_at,
		        c.name,c.email
		 FROM orders o
		 JOIN customers c ON o.customer_id = c.id
		 ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.AdminOrder{}
	for rows.Next() {
		var o model.AdminOrder
		var blob string
		if err := rows.Scan(&o.ID, &o.CustomerID, &blob, &o.TotalAmount, &o.DeliveryAddress, &o.PaymentMethod, &o.Status, &o.CreatedAt,
			&o.CustomerName, &o.CustomerEmail); err != nil {
			return nil, err
		}
		if o.Items, err = model.DecodeItems(blob); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// UpdateStatus overwrites an order's status unconditionally.  There is no
// transition guard; see the status constants in the model package.
func (r *OrderRepo) UpdateStatus(ctx context.Context, orderID uint64, status string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE orders SET status=? WHERE id=?", status, orderID)
	return err
}

// Stats computes the dashboard aggregates over all orders.  COALESCE keeps
// the sums at zero instead of NULL when the table is empty.
func (r *OrderRepo) Stats(ctx context.Context) (OrderStats, error) {
	var s OrderStats
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(total_amount),0),
		        COUNT(DISTINCT customer_id),
		        COALESCE(AVG(total_amount),0)
		 FROM orders`).
		Scan(&s.TotalOrders, &s.TotalRevenue, &s.TotalCustomers, &s.AverageOrderValue)
	return s, err
}
