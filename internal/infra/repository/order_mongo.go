package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type OrderMongoRepository struct {
	collection *mongo.Collection
}

func NewOrderMongoRepository(db *mongo.Database) *OrderMongoRepository {
	return &OrderMongoRepository{collection: db.Collection("orders")}
}

var _ repo.OrderRepository = (*OrderMongoRepository)(nil)

// 履歴検索用
func (r *OrderMongoRepository) CreateIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

// InsertOneを1回だけ
func (r *OrderMongoRepository) Create(ctx context.Context, order model.Order) error {
	if _, err := r.collection.InsertOne(ctx, newOrderDocument(order)); err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *OrderMongoRepository) FindByID(ctx context.Context, orderID string) (model.Order, error) {
	var d orderDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": orderID}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return d.toModel(), nil
}

func (r *OrderMongoRepository) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return []model.Order{}, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cur.Close(ctx)

	var docs []orderDocument
	if err := cur.All(ctx, &docs); err != nil {
		return []model.Order{}, fmt.Errorf("failed to decode orders: %w", err)
	}

	out := make([]model.Order, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}
