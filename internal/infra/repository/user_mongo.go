package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/domain/model"
	domainrepo "storefront/internal/repository"
)

type UserMongoRepository struct {
	collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Database) *UserMongoRepository {
	return &UserMongoRepository{collection: db.Collection("users")}
}

var _ domainrepo.UserRepository = (*UserMongoRepository)(nil)

// emailのユニーク制約
func (r *UserMongoRepository) CreateIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *UserMongoRepository) Create(ctx context.Context, user *model.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, newUserDocument(*user))
	if mongo.IsDuplicateKeyError(err) {
		return domainrepo.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *UserMongoRepository) FindByID(ctx context.Context, userID string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": userID})
}

func (r *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserMongoRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var d userDocument
	err := r.collection.FindOne(ctx, filter).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domainrepo.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return d.toModel(), nil
}

func (r *UserMongoRepository) Update(ctx context.Context, user *model.User) error {
	user.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":          user.Name,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"updated_at":    user.UpdatedAt,
	}}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
	if mongo.IsDuplicateKeyError(err) {
		return domainrepo.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}
