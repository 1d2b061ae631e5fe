package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenlight/bakery-api/internal/config"
)

// Validation failures short-circuit before any repository call, so a
// zero-value handler is enough to exercise them.
func newTestAuthHandler() *AuthHandler {
	return NewAuthHandler(config.Config{JWTSecret: "test", TokenTTLHours: 24, BcryptCost: 4}, nil, nil)
}

func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

func TestRegisterMissingFields(t *testing.T) {
	h := newTestAuthHandler()

	for _, body := range []string{
		`{}`,
		`{"name":"Ana"}`,
		`{"name":"Ana","email":"ana@example.com"}`,
		`{"email":"ana@example.com","password":"pw"}`,
	} {
		rec := postJSON(t, h.Register, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body=%s", body)
		assert.Contains(t, rec.Body.String(), "message")
	}
}

func TestRegisterInvalidBody(t *testing.T) {
	h := newTestAuthHandler()
	rec := postJSON(t, h.Register, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCustomerLoginMissingFields(t *testing.T) {
	h := newTestAuthHandler()

	for _, body := range []string{`{}`, `{"email":"a@b.c"}`, `{"password":"pw"}`} {
		rec := postJSON(t, h.CustomerLogin, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body=%s", body)
	}
}

func TestAdminLoginMissingFields(t *testing.T) {
	h := newTestAuthHandler()

	for _, body := range []string{`{}`, `{"username":"admin"}`, `{"password":"pw"}`} {
		rec := postJSON(t, h.AdminLogin, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body=%s", body)
	}
}
