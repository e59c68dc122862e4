package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the user-facing
// and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Admin routes (API-Key-protected)
	SetupAdminRoutes(r, db)
}
