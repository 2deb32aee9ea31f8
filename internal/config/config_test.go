package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseEnv() map[string]string {
	return map[string]string{
		"JWT_SECRET":      "secret",
		"COOKIE_HASH_KEY": "0123456789abcdef0123456789abcdef",
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(baseEnv())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, CartStoreCookie, cfg.CartStore)
	assert.Equal(t, 30*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10*time.Second, cfg.HTTPReadTimeout)
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=postgres dbname=storefront sslmode=disable",
		cfg.PostgresDSN(),
	)
	assert.False(t, cfg.IsProd())
}

func TestLoadFrom_DatabaseURLWins(t *testing.T) {
	e := baseEnv()
	e["DATABASE_URL"] = "postgres://u:p@db:5432/x"

	cfg, err := LoadFrom(e)
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.PostgresDSN())
}

func TestLoadFrom_RequiredChecks(t *testing.T) {
	cases := []struct {
		name string
		mod  func(map[string]string)
		want string
	}{
		{"jwt secret", func(e map[string]string) { delete(e, "JWT_SECRET") }, "JWT_SECRET is required"},
		{"cookie key", func(e map[string]string) { delete(e, "COOKIE_HASH_KEY") }, "COOKIE_HASH_KEY is required"},
		{"block key size", func(e map[string]string) { e["COOKIE_BLOCK_KEY"] = "short" }, "COOKIE_BLOCK_KEY must be 16, 24 or 32 bytes"},
		{"mongo uri", func(e map[string]string) { e["STORE_DRIVER"] = "mongo" }, "MONGO_URI is required"},
		{"driver", func(e map[string]string) { e["STORE_DRIVER"] = "sqlite" }, "STORE_DRIVER must be postgres or mongo"},
		{"cart store", func(e map[string]string) { e["CART_STORE"] = "memory" }, "CART_STORE must be cookie or redis"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := baseEnv()
			tc.mod(e)

			_, err := LoadFrom(e)
			require.Error(t, err)
			assert.EqualError(t, err, tc.want)
		})
	}
}

func TestLoadFrom_RedisCartStore(t *testing.T) {
	env := map[string]string{
		"JWT_SECRET": "secret",
		"CART_STORE": "redis",
		"REDIS_ADDR": "cache:6379",
		"PORT":       ":9000",
	}

	// セッションIDの署名にhash keyが要る
	_, err := LoadFrom(env)
	assert.EqualError(t, err, "COOKIE_HASH_KEY is required")

	env["COOKIE_HASH_KEY"] = "0123456789abcdef0123456789abcdef"
	cfg, err := LoadFrom(env)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
}

func TestLoadFrom_BadDuration(t *testing.T) {
	e := baseEnv()
	e["JWT_TTL"] = "forever"

	_, err := LoadFrom(e)
	assert.Error(t, err)
}
