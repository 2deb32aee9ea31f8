package usecase

import (
	"context"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
	"storefront/internal/domain/pricing"
	repo "storefront/internal/repository"
)

// 注文確定時の拒否メッセージ
const (
	msgCartEmpty        = "cart empty"
	msgShippingRequired = "shipping address required"
	msgPaymentRequired  = "payment method required"
	msgPriceMismatch    = "price mismatch"
	msgOutOfStock       = "Sorry. Product is out of stock"
	msgInvalidProduct   = "invalid product"
	msgInvalidQuantity  = "invalid quantity"
	msgOrderNotFound    = "Order Not Found"
	msgUnauthorized     = "unauthorized"
	msgDBError          = "db error"
)

type OrderUsecase struct {
	orders   repo.OrderRepository
	products repo.ProductRepository
	idGen    IDGenerator
	clock    Clock
	metrics  OrderMetrics
}

func NewOrderUsecase(
	orders repo.OrderRepository,
	products repo.ProductRepository,
	idGen IDGenerator,
	clock Clock,
	metrics OrderMetrics,
) *OrderUsecase {
	if metrics == nil {
		metrics = nopOrderMetrics{}
	}
	return &OrderUsecase{
		orders:   orders,
		products: products,
		idGen:    idGen,
		clock:    clock,
		metrics:  metrics,
	}
}

// POST /orders の入力（クライアントが計算した金額を含む）
type PlaceOrderInput struct {
	OrderItems      []model.OrderItem
	ShippingAddress model.ShippingAddress
	PaymentMethod   string
	ItemsPrice      decimal.Decimal
	ShippingPrice   decimal.Decimal
	TaxPrice        decimal.Decimal
	TotalPrice      decimal.Decimal
}

func (in PlaceOrderInput) prices() pricing.Prices {
	return pricing.Prices{
		ItemsPrice:    in.ItemsPrice,
		ShippingPrice: in.ShippingPrice,
		TaxPrice:      in.TaxPrice,
		TotalPrice:    in.TotalPrice,
	}
}

// PlaceOrder は検証を通った注文を送られたとおりに1回だけ保存する
func (u *OrderUsecase) PlaceOrder(ctx context.Context, who model.Identity, in PlaceOrderInput) (model.Order, error) {
	if who.UserID == "" {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, msgUnauthorized)
	}
	if len(in.OrderItems) == 0 {
		return model.Order{}, u.reject(msgCartEmpty)
	}
	// 金額計算や商品検索より先に住所を見る
	if !in.ShippingAddress.IsComplete() {
		return model.Order{}, u.reject(msgShippingRequired)
	}
	method, err := model.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return model.Order{}, u.reject(msgPaymentRequired)
	}

	if err := u.verifyItems(ctx, in.OrderItems); err != nil {
		return model.Order{}, err
	}
	if !pricing.Calculate(in.OrderItems).Equal(in.prices()) {
		return model.Order{}, u.reject(msgPriceMismatch)
	}

	now := u.clock.Now()
	items := make([]model.OrderItem, len(in.OrderItems))
	copy(items, in.OrderItems)

	order := model.Order{
		ID:              u.idGen.NewID(),
		UserID:          who.UserID,
		OrderItems:      items,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   method,
		ItemsPrice:      in.ItemsPrice,
		ShippingPrice:   in.ShippingPrice,
		TaxPrice:        in.TaxPrice,
		TotalPrice:      in.TotalPrice,
		IsPaid:          false,
		IsDelivered:     false,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := u.orders.Create(ctx, order); err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, msgDBError)
	}

	u.metrics.OrderPlaced(string(method))
	return order, nil
}

// 各明細が現在の商品・価格・在庫と合っているか
func (u *OrderUsecase) verifyItems(ctx context.Context, items []model.OrderItem) error {
	seen := make(map[string]struct{}, len(items))

	for _, it := range items {
		if it.ProductID == "" {
			return u.reject(msgInvalidProduct)
		}
		if _, dup := seen[it.ProductID]; dup {
			return u.reject(msgInvalidProduct)
		}
		seen[it.ProductID] = struct{}{}

		if it.Quantity < 1 {
			return u.reject(msgInvalidQuantity)
		}

		p, err := u.products.FindByID(ctx, it.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return u.reject(msgInvalidProduct)
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, msgDBError)
		}

		if !p.Price.Equal(it.Price) {
			return u.reject(msgPriceMismatch)
		}
		if it.Quantity > p.CountInStock {
			return u.reject(msgOutOfStock)
		}
	}
	return nil
}

func (u *OrderUsecase) reject(msg string) error {
	u.metrics.OrderRejected(msg)
	return NewHTTPError(http.StatusBadRequest, msg)
}

// GetOrder は本人か管理者にだけ返す（それ以外は存在しない扱い）
func (u *OrderUsecase) GetOrder(ctx context.Context, who model.Identity, orderID string) (model.Order, error) {
	if who.UserID == "" {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, msgUnauthorized)
	}
	if orderID == "" {
		return model.Order{}, NewHTTPError(http.StatusNotFound, msgOrderNotFound)
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, msgOrderNotFound)
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, msgDBError)
	}

	if !who.CanAccess(o.UserID) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, msgOrderNotFound)
	}
	return o, nil
}

// 自分の注文一覧
func (u *OrderUsecase) ListHistory(ctx context.Context, who model.Identity) ([]model.Order, error) {
	if who.UserID == "" {
		return []model.Order{}, NewHTTPError(http.StatusUnauthorized, msgUnauthorized)
	}

	orders, err := u.orders.ListByUserID(ctx, who.UserID)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, msgDBError)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}
