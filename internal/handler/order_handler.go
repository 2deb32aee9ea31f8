package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
	"storefront/internal/middleware"
	"storefront/internal/usecase"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// 金額はクライアント計算のまま受け取り、usecaseで突き合わせる
type placeOrderRequest struct {
	OrderItems      []model.OrderItem `json:"orderItems"`
	ShippingAddress orderAddress      `json:"shippingAddress"`
	PaymentMethod   string            `json:"paymentMethod"`
	ItemsPrice      decimal.Decimal   `json:"itemsPrice"`
	ShippingPrice   decimal.Decimal   `json:"shippingPrice"`
	TaxPrice        decimal.Decimal   `json:"taxPrice"`
	TotalPrice      decimal.Decimal   `json:"totalPrice"`
}

// 長さだけここで見る。未入力はusecaseが"shipping address required"で拒否する
type orderAddress struct {
	FullName   string `json:"fullName" validate:"max=255"`
	Address    string `json:"address" validate:"max=255"`
	City       string `json:"city" validate:"max=255"`
	PostalCode string `json:"postalCode" validate:"max=20"`
	Country    string `json:"country" validate:"max=100"`
}

func (a orderAddress) toModel() model.ShippingAddress {
	return model.ShippingAddress{
		FullName:   a.FullName,
		Address:    a.Address,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

// authは呼び出し側で組み立てたAuthJWT
func (h *OrderHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	g := e.Group("/orders", middleware.Chain(auth, middleware.NoStore()))

	g.POST("", h.create)
	g.GET("/history", h.history)
	g.GET("/:id", h.detail)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req placeOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), middleware.IdentityFrom(c), usecase.PlaceOrderInput{
		OrderItems:      req.OrderItems,
		ShippingAddress: req.ShippingAddress.toModel(),
		PaymentMethod:   req.PaymentMethod,
		ItemsPrice:      req.ItemsPrice,
		ShippingPrice:   req.ShippingPrice,
		TaxPrice:        req.TaxPrice,
		TotalPrice:      req.TotalPrice,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) history(c echo.Context) error {
	out, err := h.uc.ListHistory(c.Request().Context(), middleware.IdentityFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	out, err := h.uc.GetOrder(c.Request().Context(), middleware.IdentityFrom(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
