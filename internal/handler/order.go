package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ovenlight/bakery-api/internal/middleware"
	"github.com/ovenlight/bakery-api/internal/model"
	"github.com/ovenlight/bakery-api/internal/queue"
	"github.com/ovenlight/bakery-api/internal/service/orderevents"
)

type createOrderReq struct {
	Items           []model.OrderItem `json:"items"`
	TotalAmount     float64           `json:"totalAmount"`
	DeliveryAddress string            `json:"deliveryAddress"`
	PaymentMethod   string            `json:"paymentMethod"`
}

// CreateOrder places an order for the authenticated customer.  Items and
// the total come from the client's cart; the total is stored as sent, not
// recomputed against the items (documented trust gap, pending product
// decision).
func (h *CustomerHandler) CreateOrder(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "access denied"})
	}

	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if len(req.Items) == 0 || req.TotalAmount == 0 || req.DeliveryAddress == "" || req.PaymentMethod == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "all fields are required"})
	}

	blob, err := model.EncodeItems(req.Items)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid items"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Orders.Create(ctx, uid, blob, req.TotalAmount, req.DeliveryAddress, req.PaymentMethod)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not create order"})
	}

	// Best-effort broker notification; checkout never waits on it.
	email, _ := c.Get(middleware.CtxName).(string)
	event := queue.OrderPlacedEvent{
		OrderID:         id,
		CustomerID:      uid,
		CustomerEmail:   email,
		TotalAmount:     req.TotalAmount,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
		ItemCount:       len(req.Items),
		PlacedAt:        time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		_ = orderevents.PublishOrderPlaced(pubCtx, event)
	}()

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "order created",
		"orderId": id,
	})
}
