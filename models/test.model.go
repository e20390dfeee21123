package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Test is a scratch CRUD resource kept around for endpoint smoke checks.
// It is not part of the storefront domain.
type Test struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
