package middleware // package middleware contains reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ovenlight/bakery-api/internal/utils"
)

// Context keys under which JWTAuth stores the verified claims.  Handlers
// read these with c.Get().
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
	CtxName   = "name"
)

// JWTAuth returns an Echo middleware that validates a Bearer session token
// and injects its claims into the request context.  The provided secret
// must match the one used when issuing tokens.  A missing token is an
// authentication problem (401); a token that fails verification — bad
// signature, expired — is rejected with 403.  Role checks are a separate
// layer, see RequireRole.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "access token required"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			claims, err := utils.VerifySessionToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "invalid token"})
			}

			c.Set(CtxUserID, claims.Subject)
			c.Set(CtxRole, claims.Role)
			c.Set(CtxName, claims.Name)
			return next(c)
		}
	}
}

// UserID extracts the authenticated subject id stored by JWTAuth.  The
// boolean is false when the middleware did not run or stored an unexpected
// type.
func UserID(c echo.Context) (uint64, bool) {
	id, ok := c.Get(CtxUserID).(uint64)
	return id, ok
}
