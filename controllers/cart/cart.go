package cartcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Arzish122/fullstack-ecommerce/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddToCartInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GetCart lists the cart joined with product title, image and current
// price. GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		lines, err := services.ListCart(db.WithContext(c.Request.Context()))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, lines)
	}
}

// AddToCart adds a quantity of a product, merging into an existing
// line for the same product. POST /cart/add
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and quantity are required"})
			return
		}

		merged, err := services.AddToCart(db.WithContext(c.Request.Context()), input.ProductID, input.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case errors.Is(err, services.ErrInvalidQuantity):
				c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and quantity are required"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		message := "Product added to cart successfully."
		if merged {
			message = "Product quantity updated in cart."
		}
		c.JSON(http.StatusOK, gin.H{"message": message})
	}
}

// UpdateCartItem overwrites one line's quantity. PUT /cart/update/:id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		var input UpdateCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Valid quantity is required"})
			return
		}

		err = services.UpdateCartItem(db.WithContext(c.Request.Context()), uint(id), input.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrCartItemNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			case errors.Is(err, services.ErrInvalidQuantity):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Valid quantity is required"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item updated successfully"})
	}
}

// RemoveFromCart deletes one line by its id. DELETE /cart/remove/:id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		err = services.RemoveFromCart(db.WithContext(c.Request.Context()), uint(id))
		if err != nil {
			if errors.Is(err, services.ErrCartItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// ClearCart empties the whole cart. DELETE /cart/clear
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := services.ClearCart(db.WithContext(c.Request.Context())); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
