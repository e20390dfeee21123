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

// TestRepository stores the scratch resource in the "tests" collection.
type TestRepository struct {
	collection *mongo.Collection
}

// NewTestRepository creates a TestRepository.
func NewTestRepository(client *mongo.Client, database string) *TestRepository {
	return &TestRepository{
		collection: client.Database(database).Collection("tests"),
	}
}

// List returns every scratch document.
func (r *TestRepository) List(ctx context.Context) ([]models.Test, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tests := []models.Test{}
	for cursor.Next(ctx) {
		var t models.Test
		if err := cursor.Decode(&t); err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return tests, nil
}

// Get fetches a scratch document by hex id.
func (r *TestRepository) Get(ctx context.Context, id string) (models.Test, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Test{}, err
	}
	var t models.Test
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Test{}, repository.ErrNotFound
	}
	return t, err
}

// Insert adds a scratch document and fills in its generated id.
func (r *TestRepository) Insert(ctx context.Context, t *models.Test) error {
	result, err := r.collection.InsertOne(ctx, t)
	if err != nil {
		return err
	}
	t.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces the scratch document's fields.
func (r *TestRepository) Update(ctx context.Context, id string, t models.Test) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	t.ID = primitive.NilObjectID
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": t})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a scratch document.
func (r *TestRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
