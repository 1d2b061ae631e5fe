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

func doRoleRequest(t *testing.T, role interface{}, required ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != nil {
		c.Set(CtxRole, role)
	}
	err := RequireRole(required...)(okHandler)(c)
	require.NoError(t, err)
	return rec
}

func TestRequireRoleAllows(t *testing.T) {
	rec := doRoleRequest(t, utils.RoleAdmin, utils.RoleAdmin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleCustomerOnAdminRoute(t *testing.T) {
	rec := doRoleRequest(t, utils.RoleCustomer, utils.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleAdminOnCustomerRoute(t *testing.T) {
	rec := doRoleRequest(t, utils.RoleAdmin, utils.RoleCustomer)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleMissingRole(t *testing.T) {
	rec := doRoleRequest(t, nil, utils.RoleCustomer)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleUnknownRole(t *testing.T) {
	rec := doRoleRequest(t, "superuser", utils.RoleCustomer, utils.RoleAdmin)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
