package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/infra/cartstore"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/infra/token"
	"storefront/internal/logger"
	"storefront/internal/metrics"
	"storefront/internal/middleware"
	domainrepo "storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/usecase"
	auth "storefront/internal/usecase/auth_usecase"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//金額はJSONで数値として出す
	model.UseNumericJSON()

	//.envがあれば読む
	if err := godotenv.Load(config.EnvFile()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Fatal("load env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logger.New(cfg.LogLevel, cfg.IsProd())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//Repository（STORE_DRIVERで切り替え）
	stores, err := openStores(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("open store")
	}
	defer func() { _ = stores.Close(context.Background()) }()

	checks := map[string]handler.HealthCheck{cfg.StoreDriver: stores.Ping}

	//カートの保存先
	cartStore, err := openCartStore(ctx, cfg, checks)
	if err != nil {
		log.WithError(err).Fatal("open cart store")
	}

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	jwt := token.NewJWT(cfg.JWTSecret, cfg.JWTTTL)
	hasher := auth.NewBcryptPasswordHasher(0)

	//Usecase生成
	productUC := usecase.NewProductUsecase(stores.Products, idGen, clock)
	orderUC := usecase.NewOrderUsecase(stores.Orders, stores.Products, idGen, clock, metrics.OrderRecorder{})
	cartUC := usecase.NewCartUsecase(cartStore, stores.Products, orderUC, log)
	registerUC := auth.NewRegisterUserUsecase(stores.Users, hasher, jwt, idGen, clock)
	loginUC := auth.NewLoginUsecase(stores.Users, auth.NewBcryptPasswordVerifier(), jwt, clock)
	profileUC := auth.NewUpdateProfileUsecase(stores.Users, hasher, jwt, clock)

	//Handler生成
	e := server.New(cfg, log)
	server.RegisterRoutes(e, middleware.AuthJWT(jwt, stores.Users), server.Handlers{
		Health:  handler.NewHealthHandler(checks),
		Product: handler.NewProductHandler(productUC),
		Cart:    handler.NewCartHandler(cartUC),
		Order:   handler.NewOrderHandler(orderUC),
		User:    handler.NewUserHandler(registerUC, loginUC, profileUC, cartUC),
	})

	//Server起動
	if err := server.Start(ctx, e, cfg.Addr(), log); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}

func openStores(ctx context.Context, cfg config.Config) (infraRepo.Stores, error) {
	if cfg.StoreDriver == config.StoreDriverMongo {
		return infraRepo.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	}
	return infraRepo.OpenPostgres(cfg.PostgresDSN(), !cfg.IsProd())
}

func openCartStore(ctx context.Context, cfg config.Config, checks map[string]handler.HealthCheck) (domainrepo.CartStore, error) {
	if cfg.CartStore != config.CartStoreRedis {
		var blockKey []byte
		if cfg.CookieBlockKey != "" {
			blockKey = []byte(cfg.CookieBlockKey)
		}
		return cartstore.NewCookieStore([]byte(cfg.CookieHashKey), blockKey, cfg.CartTTL, cfg.CookieSecure), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	checks["redis"] = func(ctx context.Context) error { return client.Ping(ctx).Err() }

	return cartstore.NewRedisStore(client, []byte(cfg.CookieHashKey), cfg.CartTTL, cfg.CookieSecure, uuid.NewString), nil
}
