package mongodb

import (
	"context"
	"errors"
	"regexp"

	"go-storefront/models"
	"go-storefront/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductRepository stores products in the "products" collection.
type ProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a ProductRepository.
func NewProductRepository(client *mongo.Client, database string) *ProductRepository {
	return &ProductRepository{
		collection: client.Database(database).Collection("products"),
	}
}

func sortSpec(key string) bson.D {
	switch key {
	case repository.SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}}
	case repository.SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}}
	case repository.SortNameAsc:
		return bson.D{{Key: "name", Value: 1}}
	case repository.SortNameDesc:
		return bson.D{{Key: "name", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

// List returns one page of the catalog matching the query.
func (r *ProductRepository) List(ctx context.Context, q repository.ProductQuery) ([]models.Product, error) {
	filter := bson.M{}
	if q.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		filter = bson.M{"$or": bson.A{bson.M{"name": re}, bson.M{"details": re}}}
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	opts := options.Find().SetSort(sortSpec(q.Sort))
	if q.Limit > 0 {
		opts = opts.SetSkip(int64((page - 1) * q.Limit)).SetLimit(int64(q.Limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	for cursor.Next(ctx) {
		var product models.Product
		if err := cursor.Decode(&product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return products, nil
}

// Get fetches a single product by hex id.
func (r *ProductRepository) Get(ctx context.Context, id string) (models.Product, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Product{}, err
	}
	var product models.Product
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, repository.ErrNotFound
	}
	return product, err
}

// Insert adds a product and fills in its generated id.
func (r *ProductRepository) Insert(ctx context.Context, p *models.Product) error {
	result, err := r.collection.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Update replaces the mutable fields of a product.
func (r *ProductRepository) Update(ctx context.Context, id string, p models.Product) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	// _id is immutable; rely on the omitempty bson tag to keep it out of $set.
	p.ID = primitive.NilObjectID
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": p})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a product.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
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
