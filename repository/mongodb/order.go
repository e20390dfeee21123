package mongodb

import (
	"context"
	"errors"

	"go-storefront/models"
	"go-storefront/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderRepository stores orders in the "orders" collection.
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates an OrderRepository.
func NewOrderRepository(client *mongo.Client, database string) *OrderRepository {
	return &OrderRepository{
		collection: client.Database(database).Collection("orders"),
	}
}

// List returns every order, newest first. There is no server-side filtering
// by customer; callers scope the result themselves.
func (r *OrderRepository) List(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// Get fetches a single order by hex id.
func (r *OrderRepository) Get(ctx context.Context, id string) (models.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Order{}, err
	}
	var order models.Order
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, repository.ErrNotFound
	}
	return order, err
}

// Insert adds an order and fills in its generated id.
func (r *OrderRepository) Insert(ctx context.Context, o *models.Order) error {
	result, err := r.collection.InsertOne(ctx, o)
	if err != nil {
		return err
	}
	o.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateStatus sets the order status. The caller validates the vocabulary.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"status": status},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
