package routes

import (
	cartcontroller "github.com/Arzish122/fullstack-ecommerce/controllers/cart"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the shared shopping cart endpoints.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	{
		cartGroup.GET("", cartcontroller.GetCart(db))
		cartGroup.POST("/add", cartcontroller.AddToCart(db))
		cartGroup.PUT("/update/:id", cartcontroller.UpdateCartItem(db))
		cartGroup.DELETE("/remove/:id", cartcontroller.RemoveFromCart(db))
		cartGroup.DELETE("/clear", cartcontroller.ClearCart(db))
	}
}
