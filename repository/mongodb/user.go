package mongodb

import (
	"context"
	"errors"

	"go-storefront/models"
	"go-storefront/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository stores users in the "users" collection.
type UserRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(client *mongo.Client, database string) *UserRepository {
	return &UserRepository{
		collection: client.Database(database).Collection("users"),
	}
}

// GetByEmail looks a user up by their primary email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, repository.ErrNotFound
	}
	return user, err
}

// Insert adds a user and fills in their generated id.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) error {
	result, err := r.collection.InsertOne(ctx, u)
	if err != nil {
		return err
	}
	u.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}
