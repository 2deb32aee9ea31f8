package repository

import (
	"context"
	"fmt"

	"storefront/internal/infra/db"
	domainrepo "storefront/internal/repository"
)

// Stores はSTORE_DRIVERで選んだ実装の組
type Stores struct {
	Products domainrepo.ProductRepository
	Users    domainrepo.UserRepository
	Orders   domainrepo.OrderRepository

	// /healthz 用
	Ping  func(ctx context.Context) error
	Close func(ctx context.Context) error
}

// OpenPostgres は接続してテーブルを作る
func OpenPostgres(dsn string, debug bool) (Stores, error) {
	gormDB, err := db.Connect(dsn, debug)
	if err != nil {
		return Stores{}, err
	}
	if err := db.AutoMigrate(gormDB); err != nil {
		return Stores{}, fmt.Errorf("auto migrate: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return Stores{}, err
	}

	return Stores{
		Products: NewProductGormRepository(gormDB),
		Users:    NewUserGormRepository(gormDB),
		Orders:   NewOrderGormRepository(gormDB),
		Ping:     sqlDB.PingContext,
		Close:    func(context.Context) error { return sqlDB.Close() },
	}, nil
}

// OpenMongo は接続してインデックスを作る
func OpenMongo(ctx context.Context, uri, database string) (Stores, error) {
	mdb, err := db.ConnectMongo(ctx, uri, database)
	if err != nil {
		return Stores{}, err
	}

	products := NewProductMongoRepository(mdb)
	users := NewUserMongoRepository(mdb)
	orders := NewOrderMongoRepository(mdb)

	for _, ix := range []interface {
		CreateIndexes(context.Context) error
	}{products, users, orders} {
		if err := ix.CreateIndexes(ctx); err != nil {
			_ = mdb.Client().Disconnect(ctx)
			return Stores{}, fmt.Errorf("create indexes: %w", err)
		}
	}

	return Stores{
		Products: products,
		Users:    users,
		Orders:   orders,
		Ping:     func(ctx context.Context) error { return mdb.Client().Ping(ctx, nil) },
		Close:    mdb.Client().Disconnect,
	}, nil
}
