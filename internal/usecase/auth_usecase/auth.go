package auth

import (
	"time"

	"storefront/internal/domain/model"
)

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// 現在の時間
type Clock interface {
	Now() time.Time
}

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(user model.User, now time.Time) (token string, expiresAt time.Time, err error)
}

// register / login / profile 更新の共通レスポンス
type UserInfo struct {
	Token   string `json:"token"`
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// 新しいトークンを付けてユーザー情報を返す
func issueUserInfo(issuer AccessTokenIssuer, user model.User, now time.Time) (UserInfo, error) {
	tok, _, err := issuer.Issue(user, now)
	if err != nil {
		return UserInfo{}, err
	}
	return UserInfo{
		Token:   tok,
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
	}, nil
}
