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

type ProductMongoRepository struct {
	collection *mongo.Collection
}

func NewProductMongoRepository(db *mongo.Database) *ProductMongoRepository {
	return &ProductMongoRepository{collection: db.Collection("products")}
}

var _ repo.ProductRepository = (*ProductMongoRepository)(nil)

// slugのユニーク制約
func (r *ProductMongoRepository) CreateIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *ProductMongoRepository) List(ctx context.Context) ([]model.Product, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return []model.Product{}, fmt.Errorf("failed to list products: %w", err)
	}
	defer cur.Close(ctx)

	var docs []productDocument
	if err := cur.All(ctx, &docs); err != nil {
		return []model.Product{}, fmt.Errorf("failed to decode products: %w", err)
	}

	out := make([]model.Product, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *ProductMongoRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ProductMongoRepository) FindBySlug(ctx context.Context, slug string) (model.Product, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *ProductMongoRepository) findOne(ctx context.Context, filter bson.M) (model.Product, error) {
	var d productDocument
	err := r.collection.FindOne(ctx, filter).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return d.toModel(), nil
}

func (r *ProductMongoRepository) Create(ctx context.Context, p model.Product) error {
	_, err := r.collection.InsertOne(ctx, newProductDocument(p))
	if mongo.IsDuplicateKeyError(err) {
		return repo.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}
