package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ovenlight/bakery-api/internal/middleware"
	"github.com/ovenlight/bakery-api/internal/repository"
)

// CustomerHandler serves the customer-facing profile and order history
// endpoints.  All of them run behind JWTAuth + RequireRole("customer").
type CustomerHandler struct {
	Customers *repository.CustomerRepo
	Orders    *repository.OrderRepo
}

func NewCustomerHandler(c *repository.CustomerRepo, o *repository.OrderRepo) *CustomerHandler {
	return &CustomerHandler{Customers: c, Orders: o}
}

type profileUpdateReq struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}

// Profile returns the authenticated customer's account, without the
// password hash.
func (h *CustomerHandler) Profile(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "access denied"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Customers.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	return c.JSON(http.StatusOK, customerToPart(u))
}

// UpdateProfile overwrites the editable contact fields.  Email and password
// cannot be changed here.
func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "access denied"})
	}

	var req profileUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Customers.UpdateProfile(ctx, uid, req.Name, req.Phone, req.Address, req.City, req.Zipcode); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not update profile"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "profile updated"})
}

// MyOrders returns the customer's order history, newest first, with line
// items decoded.
func (h *CustomerHandler) MyOrders(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "access denied"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	orders, err := h.Orders.ListByCustomer(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not fetch orders"})
	}
	return c.JSON(http.StatusOK, orders)
}
