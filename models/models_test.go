package models_test

import (
	"testing"

	"go-storefront/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductValidate(t *testing.T) {
	valid := models.Product{
		Name:   "Leather Tote",
		Price:  2500,
		Images: []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg"},
		Color:  "#1a2b3c",
	}
	require.NoError(t, valid.Validate())

	noName := valid
	noName.Name = "  "
	assert.Error(t, noName.Validate())

	negative := valid
	negative.Price = -1
	assert.Error(t, negative.Validate())

	tooManyImages := valid
	tooManyImages.Images = append(tooManyImages.Images, "e.jpg")
	assert.Error(t, tooManyImages.Validate())

	badColor := valid
	badColor.Color = "blue"
	assert.Error(t, badColor.Validate())

	shortColor := valid
	shortColor.Color = "#abc"
	assert.Error(t, shortColor.Validate())

	noColor := valid
	noColor.Color = ""
	assert.NoError(t, noColor.Validate())
}

func TestOrderValidate(t *testing.T) {
	valid := models.Order{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Phone:         "0712345678",
		Status:        models.StatusPending,
		Items: []models.OrderItem{
			{ProductID: "p1", Price: 1000, Quantity: 2},
		},
		Total: "2000.00",
	}
	require.NoError(t, valid.Validate())

	noItems := valid
	noItems.Items = nil
	assert.Error(t, noItems.Validate())

	zeroQuantity := valid
	zeroQuantity.Items = []models.OrderItem{{ProductID: "p1", Quantity: 0}}
	assert.Error(t, zeroQuantity.Validate())

	noEmail := valid
	noEmail.CustomerEmail = ""
	assert.Error(t, noEmail.Validate())

	badStatus := valid
	badStatus.Status = "teleported"
	assert.Error(t, badStatus.Validate())

	blankStatus := valid
	blankStatus.Status = ""
	assert.NoError(t, blankStatus.Validate(), "status defaults later in the pipeline")
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled", "shipped"} {
		assert.True(t, models.ValidStatus(s), s)
	}
	assert.False(t, models.ValidStatus("Pending"))
	assert.False(t, models.ValidStatus(""))
}
