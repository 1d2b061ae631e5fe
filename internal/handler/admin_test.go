package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenlight/bakery-api/internal/repository"
)

func TestStatsResponseZeroOrders(t *testing.T) {
	resp := StatsResponse(repository.OrderStats{})

	assert.Equal(t, int64(0), resp["totalOrders"])
	assert.Equal(t, "0.00", resp["totalRevenue"])
	assert.Equal(t, int64(0), resp["totalCustomers"])
	assert.Equal(t, "0.00", resp["averageOrderValue"])
}

func TestStatsResponseFormatting(t *testing.T) {
	resp := StatsResponse(repository.OrderStats{
		TotalOrders:       3,
		TotalRevenue:      470,
		TotalCustomers:    2,
		AverageOrderValue: 156.66666,
	})

	assert.Equal(t, "470.00", resp["totalRevenue"])
	assert.Equal(t, "156.67", resp["averageOrderValue"])
}

func putStatus(t *testing.T, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewAdminHandler(nil, nil)
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, h.UpdateOrderStatus(c))
	return rec
}

func TestUpdateOrderStatusBadID(t *testing.T) {
	rec := putStatus(t, "abc", `{"status":"confirmed"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateOrderStatusMissingStatus(t *testing.T) {
	rec := putStatus(t, "1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
