package server

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/handler"
)

type Handlers struct {
	Health  *handler.HealthHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	User    *handler.UserHandler
}

// authはAuthJWTで、ログイン必須のルートにだけ付ける
func RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc, h Handlers) {
	h.Health.RegisterRoutes(e)
	h.Product.RegisterRoutes(e)
	h.Cart.RegisterRoutes(e, auth)
	h.Order.RegisterRoutes(e, auth)
	h.User.RegisterRoutes(e, auth)
}
