package services

import (
	"testing"

	"github.com/Arzish122/fullstack-ecommerce/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetProduct(t *testing.T) {
	db := newTestDB(t)

	product := &models.Product{
		Title:        "Pen",
		Description:  "Blue pen",
		CurrentPrice: 1.5,
		Image:        "pen.png",
		Category:     "stationery",
	}
	require.NoError(t, CreateProduct(db, product))
	require.NotZero(t, product.ID)

	got, err := GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pen", got.Title)
	assert.Equal(t, "Blue pen", got.Description)
	assert.Equal(t, 1.5, got.CurrentPrice)
	assert.Equal(t, "pen.png", got.Image)
	assert.Equal(t, "stationery", got.Category)
	// Optional fields stay NULL when not supplied.
	assert.Nil(t, got.OldPrice)
	assert.Nil(t, got.Rating)
	assert.Nil(t, got.StarCount)
	assert.Nil(t, got.Orders)
}

func TestGetProductNotFound(t *testing.T) {
	db := newTestDB(t)

	_, err := GetProduct(db, 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestUpdateProductReplacesAllColumns(t *testing.T) {
	db := newTestDB(t)

	product := &models.Product{
		Title:        "Pen",
		Description:  "Blue pen",
		CurrentPrice: 1.5,
		OldPrice:     floatPtr(2.0),
		Rating:       floatPtr(4.5),
		StarCount:    intPtr(12),
		Orders:       intPtr(3),
		Image:        "pen.png",
		Category:     "stationery",
	}
	require.NoError(t, CreateProduct(db, product))

	err := UpdateProduct(db, product.ID, &models.Product{
		Title:        "Pencil",
		Description:  "",
		CurrentPrice: 0.5,
		Image:        "pencil.png",
		Category:     "stationery",
	})
	require.NoError(t, err)

	got, err := GetProduct(db, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pencil", got.Title)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, 0.5, got.CurrentPrice)
	// Full replace: optional fields omitted from the update go back to NULL.
	assert.Nil(t, got.OldPrice)
	assert.Nil(t, got.Rating)
	assert.Nil(t, got.StarCount)
	assert.Nil(t, got.Orders)
}

func TestUpdateProductNotFound(t *testing.T) {
	db := newTestDB(t)

	err := UpdateProduct(db, 42, &models.Product{
		Title:        "Ghost",
		CurrentPrice: 1,
		Image:        "ghost.png",
		Category:     "none",
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "Pen")

	require.NoError(t, DeleteProduct(db, product.ID))

	_, err := GetProduct(db, product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, DeleteProduct(db, product.ID), ErrProductNotFound)
}

func TestListProducts(t *testing.T) {
	db := newTestDB(t)

	products, err := ListProducts(db)
	require.NoError(t, err)
	assert.Empty(t, products)

	seedProduct(t, db, "Pen")
	seedProduct(t, db, "Pencil")

	products, err = ListProducts(db)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
