package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenlight/bakery-api/internal/utils"
)

const testSecret = "unit-test-secret"

func doRequest(t *testing.T, mw echo.MiddlewareFunc, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := mw(next)(c)
	require.NoError(t, err)
	return rec
}

func okHandler(c echo.Context) error { return c.NoContent(http.StatusOK) }

func TestJWTAuthMissingToken(t *testing.T) {
	rec := doRequest(t, JWTAuth(testSecret), "", okHandler)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	rec := doRequest(t, JWTAuth(testSecret), "Token abc", okHandler)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec := doRequest(t, JWTAuth(testSecret), "Bearer garbage", okHandler)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	token, _, err := utils.NewSessionToken("another-secret", 1, utils.RoleCustomer, "a@b.c", 24)
	require.NoError(t, err)

	rec := doRequest(t, JWTAuth(testSecret), "Bearer "+token, okHandler)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	token, _, err := utils.NewSessionToken(testSecret, 1, utils.RoleCustomer, "a@b.c", -1)
	require.NoError(t, err)

	rec := doRequest(t, JWTAuth(testSecret), "Bearer "+token, okHandler)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestJWTAuthInjectsClaims(t *testing.T) {
	token, _, err := utils.NewSessionToken(testSecret, 42, utils.RoleCustomer, "ana@example.com", 24)
	require.NoError(t, err)

	next := func(c echo.Context) error {
		uid, ok := UserID(c)
		assert.True(t, ok)
		assert.Equal(t, uint64(42), uid)
		assert.Equal(t, utils.RoleCustomer, c.Get(CtxRole))
		assert.Equal(t, "ana@example.com", c.Get(CtxName))
		return c.NoContent(http.StatusOK)
	}
	rec := doRequest(t, JWTAuth(testSecret), "Bearer "+token, next)
	assert.Equal(t, http.StatusOK, rec.Code)
}
