package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/infra/cartstore"
	auth "storefront/internal/usecase/auth_usecase"
)

func TestUserHandler_RegisterAndLogin(t *testing.T) {
	app := newTestApp(t)
	cl := app.client(t)

	info := cl.register("Taro", "Taro@Example.com")
	assert.NotEmpty(t, info.Token)
	assert.Equal(t, "taro@example.com", info.Email)
	assert.False(t, info.IsAdmin)

	rec := cl.do(http.MethodPost, "/users/register", map[string]string{
		"name": "Again", "email": "taro@example.com", "password": "s3cret-pass",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "User already exists", errorOf(t, rec))

	rec = cl.do(http.MethodPost, "/users/login", map[string]string{"email": "taro@example.com", "password": "s3cret-pass"})
	require.Equal(t, http.StatusOK, rec.Code)
	var login auth.UserInfo
	decode(t, rec, &login)
	assert.Equal(t, info.ID, login.ID)

	rec = cl.do(http.MethodPost, "/users/login", map[string]string{"email": "taro@example.com", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", errorOf(t, rec))
}

func TestUserHandler_RegisterValidation(t *testing.T) {
	cases := []struct {
		name string
		body map[string]string
		want string
	}{
		{"no name", map[string]string{"email": "a@example.com", "password": "s3cret-pass"}, "name required"},
		{"bad email", map[string]string{"name": "A", "email": "nope", "password": "s3cret-pass"}, "invalid email format"},
		{"short password", map[string]string{"name": "A", "email": "a@example.com", "password": "abc"}, "password too short"},
		{"weak password", map[string]string{"name": "A", "email": "a@example.com", "password": "password"}, "weak password"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cl := newTestApp(t).client(t)

			rec := cl.do(http.MethodPost, "/users/register", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tc.want, errorOf(t, rec))
		})
	}
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	app := newTestApp(t)
	cl := app.client(t)
	me := cl.register("Taro", "taro@example.com")

	rec := cl.do(http.MethodPut, "/users/profile", map[string]string{"name": "Taro Y", "email": "taro.y@example.com"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated auth.UserInfo
	decode(t, rec, &updated)
	assert.Equal(t, me.ID, updated.ID)
	assert.Equal(t, "Taro Y", updated.Name)
	assert.NotEmpty(t, updated.Token)

	// パスワード未指定なので元のままログインできる
	rec = cl.do(http.MethodPost, "/users/login", map[string]string{"email": "taro.y@example.com", "password": "s3cret-pass"})
	assert.Equal(t, http.StatusOK, rec.Code)

	cl.token = ""
	rec = cl.do(http.MethodPut, "/users/profile", map[string]string{"name": "X", "email": "x@example.com"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_LogoutClearsCart(t *testing.T) {
	cl := newTestApp(t).client(t)

	require.Equal(t, http.StatusOK, cl.do(http.MethodPut, "/cart/items", map[string]any{"productId": "p1", "quantity": 1}).Code)
	require.Equal(t, http.StatusOK, cl.do(http.MethodPut, "/cart/shipping", testAddress).Code)
	require.Contains(t, cl.cookies, cartstore.CookieCartItems)

	rec := cl.do(http.MethodPost, "/users/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Logged out"}`, rec.Body.String())
	assert.NotContains(t, cl.cookies, cartstore.CookieCartItems)
	assert.NotContains(t, cl.cookies, cartstore.CookieShippingAddress)
}
