package routes

import (
	auditControllers "github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/controllers/audit"
	bannerControllers "github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/controllers/banner"
	couponControllers "github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/controllers/coupon"
	productControllers "github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/controllers/product"
	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(db))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(db))
			productAdmin.GET("", productControllers.GetProducts(db))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(db))
			productAdmin.GET("/export-excel", productControllers.ExportProductsToExcel(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productControllers.CreateCategory(db))
			categoryAdmin.PUT("/:id", productControllers.UpdateCategory(db))
			categoryAdmin.GET("", productControllers.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productControllers.DeleteCategory(db))
		}

		// ─────────── Coupon Management ───────────
		couponAdmin := adminGroup.Group("/coupons")
		{
			couponAdmin.POST("", couponControllers.CreateCoupon(db))
			couponAdmin.PUT("/:id", couponControllers.UpdateCoupon(db))
			couponAdmin.GET("", couponControllers.GetAllCoupons(db))
			couponAdmin.DELETE("/:id", couponControllers.DeleteCoupon(db))
			couponAdmin.GET("/export-excel", couponControllers.ExportCouponsToExcel(db))
		}

		// ─────────── Banner Management ───────────
		bannerAdmin := adminGroup.Group("/banners")
		{
			bannerAdmin.POST("", bannerControllers.CreateBanner(db))
			bannerAdmin.GET("", bannerControllers.GetBanners(db, true))
			bannerAdmin.PUT("/:id", bannerControllers.UpdateBanner(db))
			bannerAdmin.DELETE("/:id", bannerControllers.DeleteBanner(db))
		}

		// ─────────── Audit Trail ───────────
		auditAdmin := adminGroup.Group("/audit")
		{
			auditAdmin.GET("/user/:user_id", auditControllers.GetAuditLogsByUser(db))
			auditAdmin.GET("/cart/:cart_id", auditControllers.GetAuditLogsByCart(db))
			auditAdmin.GET("/ws", auditControllers.AuditWebSocketHandler)
		}
	}
}
