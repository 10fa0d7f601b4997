package routes

import (
	productcontroller "github.com/Arzish122/fullstack-ecommerce/controllers/product"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupProductRoutes registers the storefront catalog reads and the
// admin dashboard's product management endpoints. Paths are flat; the
// dashboard frontend depends on them verbatim.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Storefront ────────────────
	r.GET("/products", productcontroller.GetProducts(db))
	r.GET("/product/:id", productcontroller.GetProductByID(db))

	// ──────────────── Admin Dashboard ────────────────
	r.POST("/add_product", productcontroller.CreateProduct(db))
	r.PUT("/update_product/:id", productcontroller.UpdateProduct(db))
	r.DELETE("/delete_product/:id", productcontroller.DeleteProduct(db))
	r.GET("/export_products", productcontroller.ExportProductsToExcel(db))
}
