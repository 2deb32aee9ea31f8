package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/redis/go-redis/v9"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
)

// セッションIDを持つcookie
const CookieCartSession = "cart_session"

// RedisStore はcookieには署名したセッションIDだけを置き、中身はredisに持つ
type RedisStore struct {
	client *redis.Client
	codec  *securecookie.SecureCookie
	ttl    time.Duration
	secure bool
	newID  func() string
}

var _ repository.CartStore = (*RedisStore)(nil)

// hashKeyはCOOKIE_HASH_KEY（cookie storeと共通）
func NewRedisStore(client *redis.Client, hashKey []byte, ttl time.Duration, secure bool, newID func() string) *RedisStore {
	codec := securecookie.New(hashKey, nil)
	codec.MaxAge(int(ttl.Seconds()))

	return &RedisStore{client: client, codec: codec, ttl: ttl, secure: secure, newID: newID}
}

func (s *RedisStore) Load(ctx context.Context, jar repository.CookieJar) (model.Cart, error) {
	empty := model.Cart{Items: []model.CartItem{}}

	sid, ok := s.sessionID(jar)
	if !ok {
		return empty, nil
	}

	data, err := s.client.Get(ctx, cacheKey(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return empty, nil
	}
	if err != nil {
		return empty, fmt.Errorf("redis get failed: %w", err)
	}

	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		// 壊れた値は空のカート扱い
		return empty, nil
	}
	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}
	if !cart.PaymentMethod.IsSet() {
		cart.PaymentMethod = ""
	}
	return cart, nil
}

func (s *RedisStore) Save(ctx context.Context, jar repository.CookieJar, cart model.Cart) error {
	sid, ok := s.sessionID(jar)
	if !ok {
		sid = s.newID()
	}

	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := s.client.Set(ctx, cacheKey(sid), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	encoded, err := s.codec.Encode(CookieCartSession, sid)
	if err != nil {
		return fmt.Errorf("encode session failed: %w", err)
	}
	// 有効期限を延長
	jar.SetCookie(s.cookie(encoded, int(s.ttl.Seconds())))
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, jar repository.CookieJar) error {
	sid, ok := s.sessionID(jar)
	if !ok {
		return nil
	}
	if err := s.client.Del(ctx, cacheKey(sid)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	jar.SetCookie(s.cookie("", -1))
	return nil
}

func (s *RedisStore) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieCartSession,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// 署名が合わないIDは無いものとして扱う
func (s *RedisStore) sessionID(jar repository.CookieJar) (string, bool) {
	c, err := jar.Cookie(CookieCartSession)
	if err != nil || c.Value == "" {
		return "", false
	}
	var sid string
	if err := s.codec.Decode(CookieCartSession, c.Value, &sid); err != nil || sid == "" {
		return "", false
	}
	return sid, true
}

func cacheKey(sid string) string {
	return fmt.Sprintf("cart:%s", sid)
}
