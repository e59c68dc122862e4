package routes

import (
	addressControllers "github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/controllers/address"
	bannerControllers "github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/controllers/banner"
	cartControllers "github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/controllers/cart"
	memberControllers "github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/controllers/member"
	productControllers "github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/controllers/product"
	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the storefront endpoints. Cart, member and
// address routes require a JWT; browsing is public.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Browse (public) ────────────────
	r.GET("/products", productControllers.GetProducts(db))
	r.GET("/products/:id", productControllers.GetProductByID(db))
	r.GET("/banners", bannerControllers.GetBanners(db, false))

	// ──────────────── Shopping Cart ────────────────
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.ValidateToken)
	{
		cartGroup.POST("/add", cartControllers.AddToCart(db))
		cartGroup.PUT("/update/:cart_item_id", cartControllers.UpdateCartItem(db))
		cartGroup.DELETE("/delete/:cart_item_id", cartControllers.DeleteCartItem(db))
		cartGroup.DELETE("/clear", cartControllers.ClearCart(db))
		cartGroup.GET("/view", cartControllers.ViewCart(db))
		cartGroup.POST("/apply-coupon", cartControllers.ApplyCoupon(db))
		cartGroup.DELETE("/remove-coupon", cartControllers.RemoveCoupon(db))
		cartGroup.GET("/list-coupons", cartControllers.ListCoupons(db))
	}

	// ──────────────── Family Members ────────────────
	memberGroup := r.Group("/members")
	memberGroup.Use(middleware.ValidateToken)
	{
		memberGroup.POST("", memberControllers.CreateMember(db))
		memberGroup.GET("", memberControllers.GetMembers(db))
		memberGroup.PUT("/:id", memberControllers.UpdateMember(db))
		memberGroup.DELETE("/:id", memberControllers.DeleteMember(db))
	}

	// ──────────────── Addresses ────────────────
	addressGroup := r.Group("/addresses")
	addressGroup.Use(middleware.ValidateToken)
	{
		addressGroup.POST("", addressControllers.CreateAddress(db))
		addressGroup.GET("", addressControllers.GetAddresses(db))
		addressGroup.PUT("/:id", addressControllers.UpdateAddress(db))
		addressGroup.DELETE("/:id", addressControllers.DeleteAddress(db))
	}
}
