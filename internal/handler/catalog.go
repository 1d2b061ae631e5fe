package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ovenlight/bakery-api/internal/catalog"
)

// Menu returns the product catalog.  Public: guests browse the menu before
// registering.
func Menu(c echo.Context) error {
	return c.JSON(http.StatusOK, catalog.Products())
}
