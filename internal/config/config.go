package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"

	CartStoreCookie = "cookie"
	CartStoreRedis  = "redis"
)

// Configはアプリ全体の設定
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`
	// dev/prod
	GoEnv    string `env:"GO_ENV" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// postgres/mongo
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	// あれば最優先
	DatabaseURL      string `env:"DATABASE_URL"`
	PostgresHost     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser     string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"storefront"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	MongoURI string `env:"MONGO_URI"`
	MongoDB  string `env:"MONGO_DB" envDefault:"storefront"`

	JWTSecret string        `env:"JWT_SECRET"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"720h"`

	// cookie/redis
	CartStore     string `env:"CART_STORE" envDefault:"cookie"`
	CookieHashKey string `env:"COOKIE_HASH_KEY"`
	// 空なら暗号化しない
	CookieBlockKey string        `env:"COOKIE_BLOCK_KEY"`
	CookieSecure   bool          `env:"COOKIE_SECURE" envDefault:"false"`
	RedisAddr      string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" envDefault:"0"`
	CartTTL        time.Duration `env:"CART_TTL" envDefault:"720h"`

	HTTPReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	HTTPWriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
}

// Loadは環境変数
func Load() (Config, error) {
	return load(env.Options{})
}

// テスト用（環境変数の代わりにmapを読む）
func LoadFrom(environ map[string]string) (Config, error) {
	return load(env.Options{Environment: environ})
}

func load(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	switch cfg.StoreDriver {
	case StoreDriverPostgres:
	case StoreDriverMongo:
		if cfg.MongoURI == "" {
			return Config{}, fmt.Errorf("MONGO_URI is required")
		}
	default:
		return Config{}, fmt.Errorf("STORE_DRIVER must be postgres or mongo")
	}
	// redisでもセッションIDの署名に使う
	if cfg.CookieHashKey == "" {
		return Config{}, fmt.Errorf("COOKIE_HASH_KEY is required")
	}
	switch cfg.CartStore {
	case CartStoreCookie:
		if n := len(cfg.CookieBlockKey); n != 0 && n != 16 && n != 24 && n != 32 {
			return Config{}, fmt.Errorf("COOKIE_BLOCK_KEY must be 16, 24 or 32 bytes")
		}
	case CartStoreRedis:
		if cfg.RedisAddr == "" {
			return Config{}, fmt.Errorf("REDIS_ADDR is required")
		}
	default:
		return Config{}, fmt.Errorf("CART_STORE must be cookie or redis")
	}

	return cfg, nil
}

// ":8080" 形式
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func (c Config) IsProd() bool {
	return c.GoEnv == "prod"
}

// DATABASE_URLがなければPOSTGRES_*から組み立てる
func (c Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

// .envの場所（なければ読まない）
func EnvFile() string {
	if v := os.Getenv("ENV_FILE"); v != "" {
		return v
	}
	return ".env"
}
