package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account known to the identity collaborator. The
// storefront only ever reads name and email back from it.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName string             `bson:"first_name" json:"firstName"`
	LastName  string             `bson:"last_name" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password,omitempty" json:"-"`
	Role      string             `bson:"role" json:"role"` // "user" or "admin"
}
