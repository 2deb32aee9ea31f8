package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

var _ repo.ProductRepository = (*ProductGormRepository)(nil)

// 全商品（新しい順）
func (r *ProductGormRepository) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Order("id desc").
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// IDで商品を取得
func (r *ProductGormRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	return r.first(ctx, "id = ?", id)
}

// slugで商品を取得
func (r *ProductGormRepository) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	return r.first(ctx, "slug = ?", slug)
}

func (r *ProductGormRepository) first(ctx context.Context, cond string, arg any) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where(cond, arg).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

// 商品の作成（slug重複はErrDuplicate）
func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) error {
	err := r.db.WithContext(ctx).Create(&p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repo.ErrDuplicate
	}
	return err
}
