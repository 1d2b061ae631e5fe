package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole returns a middleware that enforces that the authenticated
// caller has one of the given roles.  The roles correspond to the values
// stored in the token's "role" claim.  Authentication (a valid token) and
// authorization (the right role for this route) are deliberately separate
// layers: this middleware assumes JWTAuth already ran and stored the role
// in the context.  A missing or disallowed role yields 403.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "access denied"})
			}
			return next(c)
		}
	}
}
