package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ovenlight/bakery-api/internal/config"
	"github.com/ovenlight/bakery-api/internal/model"
	"github.com/ovenlight/bakery-api/internal/repository"
	"github.com/ovenlight/bakery-api/internal/utils"
)

// AuthHandler bundles dependencies for registration and login endpoints.
type AuthHandler struct {
	Cfg       config.Config
	Customers *repository.CustomerRepo
	Admins    *repository.AdminRepo
}

func NewAuthHandler(cfg config.Config, c *repository.CustomerRepo, a *repository.AdminRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Customers: c, Admins: a}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Zipcode  string `json:"zipcode"`
}
type customerLoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type adminLoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type customerPart struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
}
type adminPart struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func customerToPart(c model.Customer) customerPart {
	return customerPart{
		ID: c.ID, Name: c.Name, Email: c.Email,
		Phone: c.Phone, Address: c.Address, City: c.City, Zipcode: c.Zipcode,
	}
}

// Register creates a customer account and returns a freshly issued session
// token so the client is logged in immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "name, email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Customers.Create(ctx, req.Name, req.Email, req.Password,
		req.Phone, req.Address, req.City, req.Zipcode, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not create account"})
	}

	token, _, err := utils.NewSessionToken(h.Cfg.JWTSecret, id, utils.RoleCustomer, req.Email, h.Cfg.TokenTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not issue token"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "account created",
		"token":   token,
		"user": customerPart{
			ID: id, Name: req.Name, Email: req.Email,
			Phone: req.Phone, Address: req.Address, City: req.City, Zipcode: req.Zipcode,
		},
	})
}

// CustomerLogin verifies email/password and returns a session token.  The
// 401 message is identical for an unknown email and a wrong password so
// responses carry no account-enumeration signal.
func (h *AuthHandler) CustomerLogin(c echo.Context) error {
	var req customerLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Customers.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "incorrect email or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "incorrect email or password"})
	}

	token, _, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, utils.RoleCustomer, u.Email, h.Cfg.TokenTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not issue token"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "login successful",
		"token":   token,
		"user":    customerToPart(u),
	})
}

// AdminLogin verifies username/password against the admin_users table and
// returns a session token carrying the admin role.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req adminLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "username and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	a, err := h.Admins.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "incorrect username or password"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal server error"})
	}
	if !utils.VerifyPassword(a.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "incorrect username or password"})
	}

	token, _, err := utils.NewSessionToken(h.Cfg.JWTSecret, a.ID, utils.RoleAdmin, a.Username, h.Cfg.TokenTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "could not issue token"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "login successful",
		"token":   token,
		"user":    adminPart{ID: a.ID, Username: a.Username, Role: a.Role},
	})
}
