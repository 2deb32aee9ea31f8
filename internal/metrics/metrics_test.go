package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoutePattern(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/products/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/products/:id", "200"))

	for _, id := range []string{"a", "b"} {
		req := httptest.NewRequest(http.MethodGet, "/products/"+id, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/products/:id", "200"))
	assert.Equal(t, before+2, after)
}

func TestOrderRecorder(t *testing.T) {
	r := OrderRecorder{}
	before := testutil.ToFloat64(ordersPlaced.WithLabelValues("PayPal"))

	r.OrderPlaced("PayPal")

	assert.Equal(t, before+1, testutil.ToFloat64(ordersPlaced.WithLabelValues("PayPal")))
}

func TestHandler_ExposesRegistry(t *testing.T) {
	OrderRecorder{}.OrderRejected("price mismatch")

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "storefront_orders_rejected_total"))
}
