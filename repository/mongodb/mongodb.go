// Package mongodb implements the repository interfaces on top of the
// MongoDB driver.
package mongodb

import (
	"go-storefront/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}
	return oid, nil
}
