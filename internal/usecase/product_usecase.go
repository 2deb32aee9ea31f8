package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
	idGen       IDGenerator
	clock       Clock
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, idGen IDGenerator, clock Clock) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		idGen:       idGen,
		clock:       clock,
	}
}

func (u *ProductUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.List(ctx)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) GetProduct(ctx context.Context, productID string) (model.Product, error) {
	if strings.TrimSpace(productID) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	return u.found(u.productRepo.FindByID(ctx, productID))
}

func (u *ProductUsecase) GetProductBySlug(ctx context.Context, slug string) (model.Product, error) {
	if strings.TrimSpace(slug) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid slug")
	}
	return u.found(u.productRepo.FindBySlug(ctx, slug))
}

func (u *ProductUsecase) found(p model.Product, err error) (model.Product, error) {
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product Not Found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

// SeedProducts は既存slugを飛ばして登録し、登録件数を返す
func (u *ProductUsecase) SeedProducts(ctx context.Context, products []model.Product) (int, error) {
	created := 0
	for _, p := range products {
		if strings.TrimSpace(p.Name) == "" || strings.TrimSpace(p.Slug) == "" {
			return created, NewHTTPError(http.StatusBadRequest, "name and slug required")
		}
		if p.Price.IsNegative() || p.CountInStock < 0 {
			return created, NewHTTPError(http.StatusBadRequest, "price and stock must be >= 0")
		}

		if p.ID == "" {
			p.ID = u.idGen.NewID()
		}
		now := u.clock.Now()
		p.CreatedAt = now
		p.UpdatedAt = now

		err := u.productRepo.Create(ctx, p)
		if errors.Is(err, repo.ErrDuplicate) {
			continue
		}
		if err != nil {
			return created, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		created++
	}
	return created, nil
}
