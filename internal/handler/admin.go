package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ovenlight/bakery-api/internal/queue"
	"github.com/ovenlight/bakery-api/internal/repository"
	"github.com/ovenlight/bakery-api/internal/service/orderevents"
)

// AdminHandler serves the dashboard endpoints.  All of them run behind
// JWTAuth + RequireRole("admin").
type AdminHandler struct {
	Orders    *repository.OrderRepo
	Customers *repository.CustomerRepo
}

func NewAdminHandler(o *repository.OrderRepo, c *repository.CustomerRepo) *AdminHandler {
	return &AdminHandler{Orders: o, Customers: c}
}

type statusUpdateReq struct {
	Status string `json:"status"`
}

type customerListPart struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

// ListOrders returns every order joined with customer name/email, newest
// first.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	orders, err := h.Orders.ListAllWithCustomer(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not fetch orders"})
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus overwrites an order's status.  The string is stored as
// received; validating it against the known status set is a pending product
// decision (see model status constants).
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid order id"})
	}

	var req statusUpdateReq
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "status is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Orders.UpdateStatus(ctx, orderID, req.Status); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not update status"})
	}

	event := queue.OrderStatusChangedEvent{
		OrderID:   orderID,
		Status:    req.Status,
		ChangedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		_ = orderevents.PublishOrderStatusChanged(pubCtx, event)
	}()

	return c.JSON(http.StatusOK, echo.Map{"message": "status updated"})
}

// Stats returns the dashboard aggregates.  Revenue and average are
// formatted to two decimal places, "0.00" when there are no orders.
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Orders.Stats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not fetch statistics"})
	}
	return c.JSON(http.StatusOK, StatsResponse(s))
}

// StatsResponse shapes repository aggregates into the wire format.
func StatsResponse(s repository.OrderStats) echo.Map {
	return echo.Map{
		"totalOrders":       s.TotalOrders,
		"totalRevenue":      fmt.Sprintf("%.2f", s.TotalRevenue),
		"totalCustomers":    s.TotalCustomers,
		"averageOrderValue": fmt.Sprintf("%.2f", s.AverageOrderValue),
	}
}

// ListCustomers returns every customer, newest first, without password
// hashes.
func (h *AdminHandler) ListCustomers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	customers, err := h.Customers.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not fetch customers"})
	}

	out := make([]customerListPart, 0, len(customers))
	for _, u := range customers {
		out = append(out, customerListPart{
			ID: u.ID, Name: u.Name, Email: u.Email,
			Phone: u.Phone, City: u.City, CreatedAt: u.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}
