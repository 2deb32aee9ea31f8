package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type ProductRepoMock struct{ mock.Mock }

var _ repo.ProductRepository = (*ProductRepoMock)(nil)

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	ps, _ := args.Get(0).([]model.Product)
	return ps, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id string) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	args := m.Called(ctx, slug)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

var _ repo.OrderRepository = (*OrderRepoMock)(nil)

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	os, _ := args.Get(0).([]model.Order)
	return os, args.Error(1)
}

type MetricsMock struct{ mock.Mock }

func (m *MetricsMock) OrderPlaced(paymentMethod string) { m.Called(paymentMethod) }
func (m *MetricsMock) OrderRejected(reason string)      { m.Called(reason) }

type fixedID struct{ id string }

func (g fixedID) NewID() string { return g.id }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// jarごとに1つのカートを持つメモリ上のstore
type memoryCartStore struct {
	carts   map[repo.CookieJar]model.Cart
	saves   int
	saveErr error
}

func newMemoryCartStore() *memoryCartStore {
	return &memoryCartStore{carts: map[repo.CookieJar]model.Cart{}}
}

func (s *memoryCartStore) Load(_ context.Context, jar repo.CookieJar) (model.Cart, error) {
	c, ok := s.carts[jar]
	if !ok {
		return model.Cart{Items: []model.CartItem{}}, nil
	}
	c.Items = c.CloneItems()
	return c, nil
}

func (s *memoryCartStore) Save(_ context.Context, jar repo.CookieJar, c model.Cart) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	c.Items = c.CloneItems()
	s.carts[jar] = c
	return nil
}

func (s *memoryCartStore) Clear(_ context.Context, jar repo.CookieJar) error {
	delete(s.carts, jar)
	return nil
}
