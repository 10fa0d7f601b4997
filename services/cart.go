package services

import (
	"errors"

	"github.com/Arzish122/fullstack-ecommerce/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListCart returns the cart joined with each line's product columns.
// The inner join drops rows whose product has been deleted.
func ListCart(db *gorm.DB) ([]models.CartLine, error) {
	lines := []models.CartLine{}
	err := db.Table("cart_items").
		Select("cart_items.id, cart_items.product_id, cart_items.quantity, products.title, products.image, products.current_price").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Scan(&lines).Error
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// AddToCart adds quantity of a product to the shared cart. An existing
// line for the product absorbs the quantity; otherwise a new line is
// inserted. The write is a single upsert against the unique index on
// product_id, so concurrent adds for the same product accumulate
// instead of losing updates. Returns whether an existing line was
// merged into.
func AddToCart(db *gorm.DB, productID uint, quantity int) (merged bool, err error) {
	if quantity < 1 {
		return false, ErrInvalidQuantity
	}

	if err := db.First(&models.Product{}, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrProductNotFound
		}
		return false, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return false, tx.Error
	}

	// Only the "added" vs "updated" message depends on this read; the
	// quantity arithmetic happens inside the upsert.
	var existing models.CartItem
	err = tx.Where("product_id = ?", productID).First(&existing).Error
	switch {
	case err == nil:
		merged = true
	case errors.Is(err, gorm.ErrRecordNotFound):
		merged = false
	default:
		tx.Rollback()
		return false, err
	}

	item := models.CartItem{ProductID: productID, Quantity: quantity}
	err = tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + excluded.quantity"),
		}),
	}).Create(&item).Error
	if err != nil {
		tx.Rollback()
		return false, err
	}
	return merged, tx.Commit().Error
}

// UpdateCartItem overwrites a cart line's quantity. No merge and no
// product re-validation; the line is addressed by its own id.
func UpdateCartItem(db *gorm.DB, id uint, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	result := tx.Model(&models.CartItem{}).Where("id = ?", id).Update("quantity", quantity)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrCartItemNotFound
	}
	return tx.Commit().Error
}

func RemoveFromCart(db *gorm.DB, id uint) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	result := tx.Delete(&models.CartItem{}, id)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrCartItemNotFound
	}
	return tx.Commit().Error
}

// ClearCart empties the shared cart, orphaned lines included.
func ClearCart(db *gorm.DB) error {
	return db.Where("1 = 1").Delete(&models.CartItem{}).Error
}
