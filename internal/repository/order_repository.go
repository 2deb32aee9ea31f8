package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// 注文の書き込みは1回だけ。所有者チェックはusecase側で行う。
type OrderRepository interface {
	Create(ctx context.Context, order model.Order) error
	FindByID(ctx context.Context, orderID string) (model.Order, error)
	// 新しい順
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
}
