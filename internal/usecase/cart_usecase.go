package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain/cart"
	"storefront/internal/domain/model"
	"storefront/internal/domain/pricing"
	repo "storefront/internal/repository"
)

// CheckoutはOrderUsecaseのPlaceOrderを呼ぶ
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, who model.Identity, in PlaceOrderInput) (model.Order, error)
}

// CartUsecase は /cart の業務ロジックです。
// 状態遷移はcart.Reduceに任せ、変更のたびにstoreへ保存します。
type CartUsecase struct {
	store    repo.CartStore
	products repo.ProductRepository
	orders   OrderPlacer
	log      logrus.FieldLogger
}

func NewCartUsecase(
	store repo.CartStore,
	products repo.ProductRepository,
	orders OrderPlacer,
	log logrus.FieldLogger,
) *CartUsecase {
	return &CartUsecase{
		store:    store,
		products: products,
		orders:   orders,
		log:      log,
	}
}

// GET /cart の形（summaryは見積もり）
type CartView struct {
	Items           []model.CartItem      `json:"items"`
	ShippingAddress model.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   model.PaymentMethod   `json:"paymentMethod"`
	Summary         pricing.Prices        `json:"summary"`
}

func newCartView(c model.Cart) CartView {
	items := c.Items
	if items == nil {
		items = []model.CartItem{}
	}
	return CartView{
		Items:           items,
		ShippingAddress: c.ShippingAddress,
		PaymentMethod:   c.PaymentMethod,
		Summary:         pricing.Calculate(items),
	}
}

type AddCartItemInput struct {
	ProductID string
	Quantity  int64
}

// GetCart は最新の価格・在庫で見積もる（checkoutと同じ金額になる）
func (u *CartUsecase) GetCart(ctx context.Context, jar repo.CookieJar) (CartView, error) {
	c, err := u.load(ctx, jar)
	if err != nil {
		return CartView{}, err
	}
	c, err = u.refresh(ctx, c)
	if err != nil {
		return CartView{}, err
	}
	return newCartView(c), nil
}

// AddItem は最新の在庫で検証してから追加する（同じ商品は数量を置き換え）
func (u *CartUsecase) AddItem(ctx context.Context, jar repo.CookieJar, in AddCartItemInput) (CartView, error) {
	if strings.TrimSpace(in.ProductID) == "" {
		return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.Quantity < 1 {
		return CartView{}, NewHTTPError(http.StatusBadRequest, msgInvalidQuantity)
	}

	c, err := u.load(ctx, jar)
	if err != nil {
		return CartView{}, err
	}

	p, err := u.products.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartView{}, NewHTTPError(http.StatusNotFound, "Product Not Found")
	}
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, msgDBError)
	}

	return u.dispatch(ctx, jar, c, cart.AddItem{Item: model.NewCartItem(p, in.Quantity)})
}

func (u *CartUsecase) RemoveItem(ctx context.Context, jar repo.CookieJar, productID string) (CartView, error) {
	c, err := u.load(ctx, jar)
	if err != nil {
		return CartView{}, err
	}
	return u.dispatch(ctx, jar, c, cart.RemoveItem{ProductID: productID})
}

func (u *CartUsecase) SaveShippingAddress(ctx context.Context, jar repo.CookieJar, addr model.ShippingAddress) (CartView, error) {
	addr = model.ShippingAddress{
		FullName:   strings.TrimSpace(addr.FullName),
		Address:    strings.TrimSpace(addr.Address),
		City:       strings.TrimSpace(addr.City),
		PostalCode: strings.TrimSpace(addr.PostalCode),
		Country:    strings.TrimSpace(addr.Country),
	}
	if !addr.IsComplete() {
		return CartView{}, NewHTTPError(http.StatusBadRequest, msgShippingRequired)
	}

	c, err := u.load(ctx, jar)
	if err != nil {
		return CartView{}, err
	}
	return u.dispatch(ctx, jar, c, cart.SaveShippingAddress{Address: addr})
}

func (u *CartUsecase) SavePaymentMethod(ctx context.Context, jar repo.CookieJar, method string) (CartView, error) {
	c, err := u.load(ctx, jar)
	if err != nil {
		return CartView{}, err
	}
	return u.dispatch(ctx, jar, c, cart.SavePaymentMethod{Method: method})
}

// Checkout はカートから注文を作り、成功したら明細だけ空にする
func (u *CartUsecase) Checkout(ctx context.Context, jar repo.CookieJar, who model.Identity) (model.Order, error) {
	c, err := u.load(ctx, jar)
	if err != nil {
		return model.Order{}, err
	}
	c, err = u.refresh(ctx, c)
	if err != nil {
		return model.Order{}, err
	}

	items := c.CloneItems()
	prices := pricing.Calculate(items)

	order, err := u.orders.PlaceOrder(ctx, who, PlaceOrderInput{
		OrderItems:      items,
		ShippingAddress: c.ShippingAddress,
		PaymentMethod:   string(c.PaymentMethod),
		ItemsPrice:      prices.ItemsPrice,
		ShippingPrice:   prices.ShippingPrice,
		TaxPrice:        prices.TaxPrice,
		TotalPrice:      prices.TotalPrice,
	})
	if err != nil {
		return model.Order{}, err
	}

	// 注文は保存済みなので、ここで失敗してもエラーにはしない
	if _, err := u.dispatch(ctx, jar, c, cart.ClearItems{}); err != nil {
		u.log.WithError(err).WithField("order_id", order.ID).Warn("cart clear after checkout failed")
	}
	return order, nil
}

// Reset はログアウト時にカートを全部消す
func (u *CartUsecase) Reset(ctx context.Context, jar repo.CookieJar) error {
	if err := u.store.Clear(ctx, jar); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "session error")
	}
	return nil
}

// 明細の価格・在庫を現在の商品に合わせる。削除された商品は外す
func (u *CartUsecase) refresh(ctx context.Context, c model.Cart) (model.Cart, error) {
	items := make([]model.CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		p, err := u.products.FindByID(ctx, it.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			continue
		}
		if err != nil {
			return model.Cart{}, NewHTTPError(http.StatusInternalServerError, msgDBError)
		}
		items = append(items, model.NewCartItem(p, it.Quantity))
	}
	c.Items = items
	return c, nil
}

func (u *CartUsecase) load(ctx context.Context, jar repo.CookieJar) (model.Cart, error) {
	c, err := u.store.Load(ctx, jar)
	if err != nil {
		return model.Cart{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}
	return c, nil
}

// 遷移して保存。失敗したら保存しない
func (u *CartUsecase) dispatch(ctx context.Context, jar repo.CookieJar, c model.Cart, a cart.Action) (CartView, error) {
	next, err := cart.Reduce(c, a)
	switch {
	case errors.Is(err, cart.ErrStockExceeded):
		return CartView{}, NewHTTPError(http.StatusBadRequest, msgOutOfStock)
	case errors.Is(err, cart.ErrInvalidQuantity):
		return CartView{}, NewHTTPError(http.StatusBadRequest, msgInvalidQuantity)
	case errors.Is(err, model.ErrInvalidPaymentMethod):
		return CartView{}, NewHTTPError(http.StatusBadRequest, "invalid payment method")
	case err != nil:
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	if err := u.store.Save(ctx, jar, next); err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "session error")
	}
	return newCartView(next), nil
}
