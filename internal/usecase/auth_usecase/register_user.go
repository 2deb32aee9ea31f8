package auth

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
	"storefront/internal/usecase"
)

// 会員登録の入力
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	issuer   AccessTokenIssuer
	idGen    IDGenerator
	clock    Clock
}

// DI
func NewRegisterUserUsecase(
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	issuer AccessTokenIssuer,
	idGen IDGenerator,
	clock Clock,
) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		idGen:    idGen,
		clock:    clock,
	}
}

// 会員登録実行
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (UserInfo, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)

	if name == "" {
		return UserInfo{}, usecase.NewHTTPError(http.StatusBadRequest, "name required")
	}
	// emailの形式チェック
	if !isValidEmailFormat(email) {
		return UserInfo{}, usecase.NewHTTPError(http.StatusBadRequest, "invalid email format")
	}
	if err := checkPassword(in.Password); err != nil {
		return UserInfo{}, err
	}

	// email重複チェック
	_, err := u.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return UserInfo{}, usecase.NewHTTPError(http.StatusConflict, "User already exists")
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return UserInfo{}, usecase.NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return UserInfo{}, usecase.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	now := u.clock.Now()
	user := &model.User{
		ID:           u.idGen.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: hashed, // 平文は保存しない
		IsAdmin:      false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// DBへ保存（同時登録はユニーク制約で弾く）
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return UserInfo{}, usecase.NewHTTPError(http.StatusConflict, "User already exists")
		}
		return UserInfo{}, usecase.NewHTTPError(http.StatusInternalServerError, "db error")
	}

	info, err := issueUserInfo(u.issuer, *user, now)
	if err != nil {
		return UserInfo{}, usecase.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return info, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// メールチェック
func isValidEmailFormat(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// パスワード（最小6文字、よくあるものは拒否）
func checkPassword(password string) error {
	if len(password) < 6 {
		return usecase.NewHTTPError(http.StatusBadRequest, "password too short")
	}
	// bcryptは72バイトまで
	if len(password) > 72 {
		return usecase.NewHTTPError(http.StatusBadRequest, "password too long")
	}
	if isWeakPassword(password) {
		return usecase.NewHTTPError(http.StatusBadRequest, "weak password")
	}
	return nil
}

// パスワードのよくある弱いパスワード
func isWeakPassword(password string) bool {
	normalized := strings.ToLower(strings.TrimSpace(password))

	weak := map[string]struct{}{
		"password":    {},
		"password123": {},
		"123456":      {},
		"12345678":    {},
		"1234567890":  {},
		"qwerty":      {},
		"qwertyuiop":  {},
		"letmein":     {},
		"admin123":    {},
	}

	_, ok := weak[normalized]
	return ok
}
