package repository

import (
	"context"
	"net/http"

	"storefront/internal/domain/model"
)

// echo.Context がそのまま満たす
type CookieJar interface {
	Cookie(name string) (*http.Cookie, error)
	SetCookie(cookie *http.Cookie)
}

// リクエスト単位のカート保存先
// 読めない・壊れた値は空のカートとして扱う。
type CartStore interface {
	Load(ctx context.Context, jar CookieJar) (model.Cart, error)
	Save(ctx context.Context, jar CookieJar, cart model.Cart) error
	Clear(ctx context.Context, jar CookieJar) error
}
