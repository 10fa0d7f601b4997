package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the catalog and
// cart endpoints.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupProductRoutes(r, db)
	SetupCartRoutes(r, db)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
