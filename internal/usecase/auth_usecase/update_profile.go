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

// パスワードが空なら変更しない
type UpdateProfileInput struct {
	Name     string
	Email    string
	Password string
}

type UpdateProfileUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	issuer   AccessTokenIssuer
	clock    Clock
}

func NewUpdateProfileUsecase(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	issuer AccessTokenIssuer,
	clock Clock,
) *UpdateProfileUsecase {
	return &UpdateProfileUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		clock:    clock,
	}
}

// 更新後のユーザーで新しいトークンを返す
func (u *UpdateProfileUsecase) Execute(ctx context.Context, who model.Identity, in UpdateProfileInput) (UserInfo, error) {
	if who.UserID == "" {
		return UserInfo{}, usecase.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.userRepo.FindByID(ctx, who.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return UserInfo{}, usecase.NewHTTPError(http.StatusNotFound, "User Not Found")
	}
	if err != nil {
		return UserInfo{}, usecase.NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = name
	}
	if email := normalizeEmail(in.Email); email != "" {
		if !isValidEmailFormat(email) {
			return UserInfo{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid email format")
		}
		user.Email = email
	}
	if in.Password != "" {
		if err := checkPassword(in.Password); err != nil {
			return UserInfo{}, err
		}
		hashed, err := u.hasher.Hash(in.Password)
		if err != nil {
			return UserInfo{}, usecase.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		user.PasswordHash = hashed
	}

	now := u.clock.Now()
	user.UpdatedAt = now
	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return UserInfo{}, usecase.NewHTTPError(http.StatusConflict, "Email already in use")
		}
		if errors.Is(err, repository.ErrNotFound) {
			return UserInfo{}, usecase.NewHTTPError(http.StatusNotFound, "User Not Found")
		}
		return UserInfo{}, usecase.NewHTTPError(http.StatusInternalServerError, "db error")
	}

	info, err := issueUserInfo(u.issuer, *user, now)
	if err != nil {
		return UserInfo{}, usecase.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return info, nil
}
