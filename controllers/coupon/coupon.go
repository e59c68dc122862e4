package couponControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CouponInput struct {
	CouponCode        string     `json:"coupon_code" binding:"required,min=3,max=50"`
	Description       string     `json:"description" binding:"max=500"`
	DiscountType      string     `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue     float64    `json:"discount_value" binding:"required,gt=0"`
	MinOrderAmount    float64    `json:"min_order_amount" binding:"omitempty,gte=0"`
	MaxDiscountAmount *float64   `json:"max_discount_amount" binding:"omitempty"`
	MaxUses           *int       `json:"max_uses" binding:"omitempty"`
	MaxUsesPerUser    int        `json:"max_uses_per_user" binding:"omitempty,min=1"`
	ValidFrom         *time.Time `json:"valid_from"`
	ValidUntil        *time.Time `json:"valid_until"`
	Status            string     `json:"status" binding:"omitempty,oneof=active inactive expired"`
	PlanTypes         []string   `json:"plan_types"` // restricts the coupon to these plan types when set
}

func (input *CouponInput) validate() string {
	if models.CouponType(input.DiscountType) == models.CouponTypePercentage && input.DiscountValue > 100 {
		return "percentage discount_value cannot exceed 100"
	}
	if input.ValidFrom != nil && input.ValidUntil != nil && input.ValidUntil.Before(*input.ValidFrom) {
		return "valid_until must be after valid_from"
	}
	for _, p := range input.PlanTypes {
		if !models.PlanType(p).Valid() {
			return "plan_types entries must be single, couple or family"
		}
	}
	return ""
}

func (input *CouponInput) apply(coupon *models.Coupon) {
	coupon.CouponCode = strings.ToUpper(strings.TrimSpace(input.CouponCode))
	coupon.Description = input.Description
	coupon.DiscountType = models.CouponType(input.DiscountType)
	coupon.DiscountValue = input.DiscountValue
	coupon.MinOrderAmount = input.MinOrderAmount
	coupon.MaxDiscountAmount = input.MaxDiscountAmount
	coupon.MaxUses = input.MaxUses
	coupon.MaxUsesPerUser = input.MaxUsesPerUser
	if coupon.MaxUsesPerUser == 0 {
		coupon.MaxUsesPerUser = 1
	}
	coupon.ValidFrom = input.ValidFrom
	coupon.ValidUntil = input.ValidUntil
	coupon.Status = models.CouponStatusActive
	if input.Status != "" {
		coupon.Status = models.CouponStatus(input.Status)
	}
	if len(input.PlanTypes) > 0 {
		coupon.ConstraintKind = models.ConstraintPlanType
		coupon.ConstraintPlanTypes = input.PlanTypes
	} else {
		coupon.ConstraintKind = models.ConstraintNone
		coupon.ConstraintPlanTypes = nil
	}
}

// POST /admin/coupons
func CreateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		var coupon models.Coupon
		input.apply(&coupon)
		if err := db.Create(&coupon).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Coupon code already exists"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{
			"status":  "success",
			"message": "Coupon created successfully.",
			"data":    coupon,
		})
	}
}

// PUT /admin/coupons/:id
func UpdateCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
			return
		}

		var coupon models.Coupon
		if err := db.First(&coupon, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupon"})
			}
			return
		}

		var input CouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg := input.validate(); msg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		input.apply(&coupon)
		if err := db.Save(&coupon).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Coupon updated successfully.",
			"data":    coupon,
		})
	}
}

// GET /admin/coupons
func GetAllCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Coupon{}).Order("created_at desc")
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var coupons []models.Coupon
		if err := query.Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Coupons fetched successfully.",
			"data":    coupons,
		})
	}
}

// DELETE /admin/coupons/:id
func DeleteCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
			return
		}

		result := db.Delete(&models.Coupon{}, id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Coupon deleted successfully."})
	}
}
