package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

func TestCartHandler_EmptyCart(t *testing.T) {
	cl := newTestApp(t).client(t)

	rec := cl.do(http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var v usecase.CartView
	decode(t, rec, &v)
	assert.Empty(t, v.Items)
	assert.True(t, dec("15").Equal(v.Summary.ShippingPrice))
}

func TestCartHandler_AddUpsertAndRemove(t *testing.T) {
	cl := newTestApp(t).client(t)

	rec := cl.do(http.MethodPut, "/cart/items", map[string]any{"productId": "p1", "quantity": 1})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// 同じ商品は数量を置き換える
	rec = cl.do(http.MethodPut, "/cart/items", map[string]any{"productId": "p1", "quantity": 3})
	require.Equal(t, http.StatusOK, rec.Code)

	var v usecase.CartView
	decode(t, rec, &v)
	require.Len(t, v.Items, 1)
	assert.Equal(t, int64(3), v.Items[0].Quantity)
	assert.True(t, dec("300").Equal(v.Summary.ItemsPrice))
	assert.True(t, dec("0").Equal(v.Summary.ShippingPrice))

	rec = cl.do(http.MethodDelete, "/cart/items/p1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &v)
	assert.Empty(t, v.Items)
}

func TestCartHandler_OverStockLeavesCartUnchanged(t *testing.T) {
	cl := newTestApp(t).client(t)

	require.Equal(t, http.StatusOK, cl.do(http.MethodPut, "/cart/items", map[string]any{"productId": "p2", "quantity": 1}).Code)

	rec := cl.do(http.MethodPut, "/cart/items", map[string]any{"productId": "p2", "quantity": 2})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Sorry. Product is out of stock", errorOf(t, rec))

	var v usecase.CartView
	decode(t, cl.do(http.MethodGet, "/cart", nil), &v)
	require.Len(t, v.Items, 1)
	assert.Equal(t, int64(1), v.Items[0].Quantity)
}

func TestCartHandler_BadRequests(t *testing.T) {
	cases := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		want   string
	}{
		{"missing product", http.MethodPut, "/cart/items", map[string]any{"quantity": 1}, http.StatusBadRequest, "productId required"},
		{"zero quantity", http.MethodPut, "/cart/items", map[string]any{"productId": "p1", "quantity": 0}, http.StatusBadRequest, "invalid quantity"},
		{"unknown product", http.MethodPut, "/cart/items", map[string]any{"productId": "zz", "quantity": 1}, http.StatusNotFound, "Product Not Found"},
		{"broken body", http.MethodPut, "/cart/items", "not-an-object", http.StatusBadRequest, "invalid body"},
		{"incomplete address", http.MethodPut, "/cart/shipping", map[string]string{"fullName": "A"}, http.StatusBadRequest, "address required"},
		{"unknown payment", http.MethodPut, "/cart/payment", map[string]string{"paymentMethod": "Bitcoin"}, http.StatusBadRequest, "invalid payment method"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cl := newTestApp(t).client(t)

			rec := cl.do(tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, tc.want, errorOf(t, rec))
		})
	}
}

func TestCartHandler_CheckoutRequiresToken(t *testing.T) {
	cl := newTestApp(t).client(t)

	rec := cl.do(http.MethodPost, "/cart/checkout", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Token is not supplied", errorOf(t, rec))
}

func TestCartHandler_CheckoutFlow(t *testing.T) {
	app := newTestApp(t)
	cl := app.client(t)
	me := cl.register("Taro", "taro@example.com")

	require.Equal(t, http.StatusOK, cl.do(http.MethodPut, "/cart/items", map[string]any{"productId": "p1", "quantity": 2}).Code)
	require.Equal(t, http.StatusOK, cl.do(http.MethodPut, "/cart/shipping", testAddress).Code)
	require.Equal(t, http.StatusOK, cl.do(http.MethodPut, "/cart/payment", map[string]string{"paymentMethod": "PayPal"}).Code)

	var before usecase.CartView
	decode(t, cl.do(http.MethodGet, "/cart", nil), &before)
	assert.True(t, dec("200").Equal(before.Summary.ItemsPrice))
	assert.True(t, dec("15").Equal(before.Summary.ShippingPrice))
	assert.True(t, dec("30").Equal(before.Summary.TaxPrice))
	assert.True(t, dec("245").Equal(before.Summary.TotalPrice))

	rec := cl.do(http.MethodPost, "/cart/checkout", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var order model.Order
	decode(t, rec, &order)
	assert.Equal(t, me.ID, order.UserID)
	assert.True(t, dec("245").Equal(order.TotalPrice))
	assert.Equal(t, model.PaymentMethodPayPal, order.PaymentMethod)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, 1, app.orders.count())

	// 明細だけ空になり、住所と支払い方法は残る
	var after usecase.CartView
	decode(t, cl.do(http.MethodGet, "/cart", nil), &after)
	assert.Empty(t, after.Items)
	assert.Equal(t, "Tokyo", after.ShippingAddress.City)
	assert.Equal(t, model.PaymentMethodPayPal, after.PaymentMethod)

	// 保存済みの注文には影響しない
	stored, err := app.orders.FindByID(t.Context(), order.ID)
	require.NoError(t, err)
	assert.Len(t, stored.OrderItems, 1)

	// 空のカートでは再注文できない
	rec = cl.do(http.MethodPost, "/cart/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "cart empty", errorOf(t, rec))
	assert.Equal(t, 1, app.orders.count())
}

func TestCartHandler_CheckoutAfterPriceChange(t *testing.T) {
	app := newTestApp(t)
	cl := app.client(t)
	cl.register("Taro", "taro@example.com")

	require.Equal(t, http.StatusOK, cl.do(http.MethodPut, "/cart/items", map[string]any{"productId": "p1", "quantity": 1}).Code)
	require.Equal(t, http.StatusOK, cl.do(http.MethodPut, "/cart/shipping", testAddress).Code)
	require.Equal(t, http.StatusOK, cl.do(http.MethodPut, "/cart/payment", map[string]string{"paymentMethod": "Cash"}).Code)

	app.products.setPrice("p1", "101")

	var v usecase.CartView
	decode(t, cl.do(http.MethodGet, "/cart", nil), &v)
	require.Len(t, v.Items, 1)
	assert.True(t, dec("101").Equal(v.Items[0].Price))
	assert.True(t, dec("131.15").Equal(v.Summary.TotalPrice))

	rec := cl.do(http.MethodPost, "/cart/checkout", nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var order model.Order
	decode(t, rec, &order)
	assert.True(t, dec("101").Equal(order.OrderItems[0].Price))
	assert.True(t, v.Summary.TotalPrice.Equal(order.TotalPrice))
}
