package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
	"storefront/internal/usecase"
)

// 管理者はseedからしか作らない
type SeedAdminUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	idGen    IDGenerator
	clock    Clock
}

func NewSeedAdminUsecase(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	idGen IDGenerator,
	clock Clock,
) *SeedAdminUsecase {
	return &SeedAdminUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		idGen:    idGen,
		clock:    clock,
	}
}

// 同じメールのユーザーがいれば何もしない（false）
func (u *SeedAdminUsecase) Execute(ctx context.Context, in RegisterUserInput) (bool, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)

	if name == "" {
		return false, usecase.NewHTTPError(http.StatusBadRequest, "name required")
	}
	if !isValidEmailFormat(email) {
		return false, usecase.NewHTTPError(http.StatusBadRequest, "invalid email format")
	}
	if err := checkPassword(in.Password); err != nil {
		return false, err
	}

	_, err := u.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, usecase.NewHTTPError(http.StatusInternalServerError, "db error")
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return false, usecase.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	now := u.clock.Now()
	err = u.userRepo.Create(ctx, &model.User{
		ID:           u.idGen.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return false, nil
	}
	if err != nil {
		return false, usecase.NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return true, nil
}
