package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id string) (model.Product, error)
	FindBySlug(ctx context.Context, slug string) (model.Product, error)

	// シード用
	Create(ctx context.Context, p model.Product) error
}
