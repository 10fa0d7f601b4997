package productcontroller

import (
	"net/http"

	"github.com/Arzish122/fullstack-ecommerce/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateProduct adds a product to the catalog. POST /add_product
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}

		product := input.toModel()
		if err := services.CreateProduct(db.WithContext(c.Request.Context()), product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Product added successfully",
			"id":      product.ID,
		})
	}
}
