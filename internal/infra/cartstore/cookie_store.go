// Package cartstore はカート状態をリクエストをまたいで保存する。
package cartstore

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
)

// カートの3つのcookie名
const (
	CookieCartItems       = "cartItems"
	CookieShippingAddress = "shippingAddress"
	CookiePaymentMethod   = "paymentMethod"
)

// CookieStore は署名付きcookieに保存する
type CookieStore struct {
	codec  *securecookie.SecureCookie
	maxAge time.Duration
	secure bool
}

var _ repository.CartStore = (*CookieStore)(nil)

// blockKeyが空なら署名のみ
func NewCookieStore(hashKey, blockKey []byte, maxAge time.Duration, secure bool) *CookieStore {
	if len(blockKey) == 0 {
		blockKey = nil
	}
	codec := securecookie.New(hashKey, blockKey)
	codec.MaxAge(int(maxAge.Seconds()))
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &CookieStore{codec: codec, maxAge: maxAge, secure: secure}
}

// 改ざん・期限切れのcookieは無視する
func (s *CookieStore) Load(_ context.Context, jar repository.CookieJar) (model.Cart, error) {
	cart := model.Cart{Items: []model.CartItem{}}

	var items []model.CartItem
	if s.read(jar, CookieCartItems, &items) && items != nil {
		cart.Items = items
	}

	var addr model.ShippingAddress
	if s.read(jar, CookieShippingAddress, &addr) {
		cart.ShippingAddress = addr
	}

	var method string
	if s.read(jar, CookiePaymentMethod, &method) {
		if m, err := model.ParsePaymentMethod(method); err == nil {
			cart.PaymentMethod = m
		}
	}

	return cart, nil
}

func (s *CookieStore) read(jar repository.CookieJar, name string, dst any) bool {
	c, err := jar.Cookie(name)
	if err != nil || c.Value == "" {
		return false
	}
	return s.codec.Decode(name, c.Value, dst) == nil
}

func (s *CookieStore) Save(_ context.Context, jar repository.CookieJar, cart model.Cart) error {
	items := cart.Items
	if items == nil {
		items = []model.CartItem{}
	}
	if err := s.write(jar, CookieCartItems, items); err != nil {
		return err
	}
	if err := s.write(jar, CookieShippingAddress, cart.ShippingAddress); err != nil {
		return err
	}
	return s.write(jar, CookiePaymentMethod, string(cart.PaymentMethod))
}

func (s *CookieStore) write(jar repository.CookieJar, name string, v any) error {
	encoded, err := s.codec.Encode(name, v)
	if err != nil {
		return err
	}
	jar.SetCookie(s.cookie(name, encoded, int(s.maxAge.Seconds())))
	return nil
}

// 3つとも削除
func (s *CookieStore) Clear(_ context.Context, jar repository.CookieJar) error {
	for _, name := range []string{CookieCartItems, CookieShippingAddress, CookiePaymentMethod} {
		jar.SetCookie(s.cookie(name, "", -1))
	}
	return nil
}

func (s *CookieStore) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
