package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/ovenlight/bakery-api/internal/config"
	"github.com/ovenlight/bakery-api/internal/handler"
	"github.com/ovenlight/bakery-api/internal/middleware"
	"github.com/ovenlight/bakery-api/internal/utils"
)

// Register wires every route under the /api base path.  Three layers of
// protection apply: the credential endpoints sit behind the Redis rate
// limiter, authenticated groups run JWTAuth, and each group additionally
// requires the role its endpoints serve.  Authentication and authorization
// stay separate middlewares so a valid customer token hitting an admin
// route fails the role check, not the token check.
func Register(e *echo.Echo, cfg config.Config, auth *handler.AuthHandler, customer *handler.CustomerHandler, admin *handler.AdminHandler) {
	api := e.Group("/api")

	// Public endpoints.
	api.GET("/health", handler.Health)
	api.GET("/menu", handler.Menu)

	// Credential endpoints, rate limited per client IP.  The limiter is a
	// no-op when Redis is not reachable.
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), config.NewRedisClient())
	api.POST("/customers/register", auth.Register, limiter)
	api.POST("/customers/login", auth.CustomerLogin, limiter)
	api.POST("/admin/login", auth.AdminLogin, limiter)

	// Customer endpoints.
	cust := api.Group("/customers")
	cust.Use(middleware.JWTAuth(cfg.JWTSecret))
	cust.Use(middleware.RequireRole(utils.RoleCustomer))
	cust.GET("/profile", customer.Profile)
	cust.PUT("/profile", customer.UpdateProfile)
	cust.GET("/orders", customer.MyOrders)

	// Checkout lives at /api/orders but carries the same customer gate.
	orders := api.Group("/orders")
	orders.Use(middleware.JWTAuth(cfg.JWTSecret))
	orders.Use(middleware.RequireRole(utils.RoleCustomer))
	orders.POST("", customer.CreateOrder)

	// Admin dashboard endpoints.
	adm := api.Group("/admin")
	adm.Use(middleware.JWTAuth(cfg.JWTSecret))
	adm.Use(middleware.RequireRole(utils.RoleAdmin))
	adm.GET("/orders", admin.ListOrders)
	adm.PUT("/orders/:id/status", admin.UpdateOrderStatus)
	adm.GET("/stats", admin.Stats)
	adm.GET("/customers", admin.ListCustomers)
}
