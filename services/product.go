package services

import (
	"errors"

	"github.com/Arzish122/fullstack-ecommerce/models"
	"gorm.io/gorm"
)

// ListProducts returns every product in store order. An empty catalog
// yields an empty slice, not an error.
func ListProducts(db *gorm.DB) ([]models.Product, error) {
	products := []models.Product{}
	if err := db.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func GetProduct(db *gorm.DB, id uint) (*models.Product, error) {
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

// CreateProduct inserts a new product and fills in its generated ID.
func CreateProduct(db *gorm.DB, product *models.Product) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Create(product).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// UpdateProduct replaces every column of the product with the given
// id. Optional fields left nil in the input become NULL, same as on
// create.
func UpdateProduct(db *gorm.DB, id uint, in *models.Product) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	var product models.Product
	if err := tx.First(&product, id).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	product.Title = in.Title
	product.Description = in.Description
	product.CurrentPrice = in.CurrentPrice
	product.OldPrice = in.OldPrice
	product.Rating = in.Rating
	product.StarCount = in.StarCount
	product.Orders = in.Orders
	product.Image = in.Image
	product.Category = in.Category

	if err := tx.Save(&product).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// DeleteProduct removes the product row. Cart rows referencing it are
// left in place; joined cart listings simply stop showing them.
func DeleteProduct(db *gorm.DB, id uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	result := tx.Delete(&models.Product{}, id)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrProductNotFound
	}
	return tx.Commit().Error
}
