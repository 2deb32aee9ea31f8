package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"storefront/internal/config"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/logger"
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
	adminName := flag.String("admin-name", "Admin", "admin display name")
	adminEmail := flag.String("admin-email", os.Getenv("ADMIN_EMAIL"), "admin email (empty skips admin)")
	adminPassword := flag.String("admin-password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	flag.Parse()

	if err := godotenv.Load(config.EnvFile()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Fatal("load env file")
	}
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("load config")
	}
	log := logger.New(cfg.LogLevel, cfg.IsProd())

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var stores infraRepo.Stores
	if cfg.StoreDriver == config.StoreDriverMongo {
		stores, err = infraRepo.OpenMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	} else {
		stores, err = infraRepo.OpenPostgres(cfg.PostgresDSN(), false)
	}
	if err != nil {
		log.WithError(err).Fatal("open store")
	}
	defer func() { _ = stores.Close(context.Background()) }()

	idGen := &uuidGenerator{}
	clock := &realClock{}

	//商品（slugが既にあれば飛ばす）
	created, err := usecase.NewProductUsecase(stores.Products, idGen, clock).SeedProducts(ctx, catalog())
	if err != nil {
		log.WithError(err).Fatal("seed products")
	}
	log.WithField("created", created).Info("products seeded")

	if *adminEmail == "" {
		return
	}

	ok, err := auth.NewSeedAdminUsecase(stores.Users, auth.NewBcryptPasswordHasher(0), idGen, clock).
		Execute(ctx, auth.RegisterUserInput{Name: *adminName, Email: *adminEmail, Password: *adminPassword})
	if err != nil {
		log.WithError(err).Fatal("seed admin")
	}
	log.WithFields(logrus.Fields{"email": *adminEmail, "created": ok}).Info("admin seeded")
}
