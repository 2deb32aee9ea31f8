package auth

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/repository"
	"storefront/internal/usecase"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

// メールとパスワードのどちらが違うかは返さない
const msgInvalidCredentials = "Invalid email or password"

type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   AccessTokenIssuer
	clock    Clock
}

func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (UserInfo, error) {
	//emailでユーザー取得
	user, err := u.userRepo.FindByEmail(ctx, normalizeEmail(in.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return UserInfo{}, usecase.NewHTTPError(http.StatusUnauthorized, msgInvalidCredentials)
		}
		return UserInfo{}, usecase.NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//パスワード照合
	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return UserInfo{}, usecase.NewHTTPError(http.StatusUnauthorized, msgInvalidCredentials)
	}

	info, err := issueUserInfo(u.issuer, *user, u.clock.Now())
	if err != nil {
		return UserInfo{}, usecase.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return info, nil
}
