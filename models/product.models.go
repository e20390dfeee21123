package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxProductImages caps the gallery size per product.
const MaxProductImages = 4

var colorPattern = regexp.MustCompile(`^#[A-Fa-f0-9]{6}$`)

// Product represents an item in the catalog
type Product struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Details   string             `bson:"details" json:"details"`
	Images    []string           `bson:"images" json:"images"`
	Color     string             `bson:"color,omitempty" json:"color,omitempty"` // e.g. "#1a2b3c"
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the invariants enforced on create and update.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("product name is required")
	}
	if p.Price < 0 {
		return errors.New("product price cannot be negative")
	}
	if len(p.Images) > MaxProductImages {
		return fmt.Errorf("maximum %d images allowed", MaxProductImages)
	}
	if p.Color != "" && !colorPattern.MatchString(p.Color) {
		return errors.New("color must be a 6-hex-digit string like #1a2b3c")
	}
	return nil
}
