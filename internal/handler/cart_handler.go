package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

// /cartのHTTP。状態はcookie（またはredisのセッション）にある
type CartHandler struct {
	uc *usecase.CartUsecase
}

func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int64  `json:"quantity" validate:"gte=1"`
}

type paymentMethodRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required"`
}

// checkoutだけログイン必須
func (h *CartHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/cart", middleware.NoStore())

	g.GET("", h.getCart)
	g.PUT("/items", h.addItem)
	g.DELETE("/items/:productId", h.removeItem)
	g.PUT("/shipping", h.saveShipping)
	g.PUT("/payment", h.savePayment)
	g.POST("/checkout", h.checkout, auth)
}

func (h *CartHandler) getCart(c echo.Context) error {
	out, err := h.uc.GetCart(c.Request().Context(), c)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req addCartItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.AddItem(c.Request().Context(), c, usecase.AddCartItemInput{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	out, err := h.uc.RemoveItem(c.Request().Context(), c, c.Param("productId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) saveShipping(c echo.Context) error {
	var req model.ShippingAddress
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.SaveShippingAddress(c.Request().Context(), c, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) savePayment(c echo.Context) error {
	var req paymentMethodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.SavePaymentMethod(c.Request().Context(), c, req.PaymentMethod)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) checkout(c echo.Context) error {
	out, err := h.uc.Checkout(c.Request().Context(), c, middleware.IdentityFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}
