package productcontroller

import (
	"net/http"

	"github.com/Arzish122/fullstack-ecommerce/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts returns the whole catalog. GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := services.ListProducts(db.WithContext(c.Request.Context()))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
