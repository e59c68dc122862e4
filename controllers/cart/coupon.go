package cartControllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	auditControllers "github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/controllers/audit"
	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Coupon validation failure codes.
const (
	CodeInvalidCouponCode      = "invalid_coupon_code"
	CodeCouponNotActive        = "not_active"
	CodeCouponNotYetValid      = "not_yet_valid"
	CodeCouponExpired          = "expired"
	CodeUsageLimitReached      = "usage_limit_reached"
	CodeUserLimitReached       = "user_limit_reached"
	CodeMinOrderNotMet         = "min_order_not_met"
	CodeProductTypeNotEligible = "product_type_not_eligible"
)

type CouponError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *CouponError) Error() string { return e.Message }

// Hard reports whether the failure means the coupon is genuinely dead.
// Hard failures purge an applied coupon on view; soft ones (min order,
// caps, eligibility) keep the stored discount so a transient cart
// change does not silently drop it.
func (e *CouponError) Hard() bool {
	switch e.Code {
	case CodeInvalidCouponCode, CodeCouponNotActive, CodeCouponNotYetValid, CodeCouponExpired:
		return true
	}
	return false
}

// ValidateAndCalculateDiscount checks a coupon code against the current
// cart and computes the discount. excludeApplicationID skips the user's
// own active CartCoupon row when re-validating on view, so an applied
// coupon does not count against its own usage caps.
func ValidateAndCalculateDiscount(db *gorm.DB, code string, userID uint, subtotal float64, groups []CartGroup, excludeApplicationID uint) (*models.Coupon, float64, *CouponError) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, 0, &CouponError{CodeInvalidCouponCode, "Invalid coupon code"}
	}

	var coupon models.Coupon
	if err := db.Where("UPPER(coupon_code) = ?", normalized).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, &CouponError{CodeInvalidCouponCode, "Invalid coupon code"}
		}
		log.Printf("⚠️ Coupon lookup failed for %q: %v", normalized, err)
		return nil, 0, &CouponError{CodeInvalidCouponCode, "Invalid coupon code"}
	}

	if coupon.Status != models.CouponStatusActive {
		return nil, 0, &CouponError{CodeCouponNotActive, "Coupon is not active"}
	}

	now := time.Now().UTC()
	if coupon.ValidFrom != nil && now.Before(coupon.ValidFrom.UTC()) {
		return nil, 0, &CouponError{CodeCouponNotYetValid, "Coupon is not yet valid"}
	}
	if coupon.ValidUntil != nil && now.After(coupon.ValidUntil.UTC()) {
		return nil, 0, &CouponError{CodeCouponExpired, "Coupon has expired"}
	}

	if coupon.MaxUses != nil {
		var totalUses int64
		if err := applicationCount(db, &coupon, 0, excludeApplicationID).Count(&totalUses).Error; err != nil {
			return nil, 0, &CouponError{CodeUsageLimitReached, "Coupon usage limit reached"}
		}
		if totalUses >= int64(*coupon.MaxUses) {
			return nil, 0, &CouponError{CodeUsageLimitReached, "Coupon usage limit reached"}
		}
	}

	if coupon.MaxUsesPerUser > 0 {
		var userUses int64
		if err := applicationCount(db, &coupon, userID, excludeApplicationID).Count(&userUses).Error; err != nil {
			return nil, 0, &CouponError{CodeUserLimitReached, "You have already used this coupon"}
		}
		if userUses >= int64(coupon.MaxUsesPerUser) {
			return nil, 0, &CouponError{CodeUserLimitReached, "You have already used this coupon"}
		}
	}

	if subtotal < coupon.MinOrderAmount {
		return nil, 0, &CouponError{
			CodeMinOrderNotMet,
			fmt.Sprintf("Minimum order amount of ₹%.0f required", coupon.MinOrderAmount),
		}
	}

	if coupon.ConstraintKind == models.ConstraintPlanType && len(coupon.ConstraintPlanTypes) > 0 {
		if !anyGroupMatchesPlan(groups, coupon.ConstraintPlanTypes) {
			return nil, 0, &CouponError{
				CodeProductTypeNotEligible,
				"Coupon is not applicable to the tests in your cart",
			}
		}
	}

	var discount float64
	switch coupon.DiscountType {
	case models.CouponTypePercentage:
		discount = subtotal * coupon.DiscountValue / 100.0
		if coupon.MaxDiscountAmount != nil && discount > *coupon.MaxDiscountAmount {
			discount = *coupon.MaxDiscountAmount
		}
	case models.CouponTypeFixed:
		discount = coupon.DiscountValue
	}
	if discount > subtotal {
		discount = subtotal
	}
	if discount < 0 {
		discount = 0
	}
	return &coupon, discount, nil
}

func applicationCount(db *gorm.DB, coupon *models.Coupon, userID, excludeID uint) *gorm.DB {
	q := db.Model(&models.CartCoupon{}).Where("coupon_id = ?", coupon.ID)
	if userID != 0 {
		q = q.Where("user_id = ?", userID)
	}
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

func anyGroupMatchesPlan(groups []CartGroup, planTypes []string) bool {
	allowed := make(map[string]bool, len(planTypes))
	for _, p := range planTypes {
		allowed[strings.ToLower(p)] = true
	}
	for _, g := range groups {
		if g.Product != nil && allowed[string(g.Product.PlanType)] {
			return true
		}
	}
	return false
}

// getAppliedCoupon returns the user's current coupon application, most
// recent first, or nil when none is applied.
func getAppliedCoupon(db *gorm.DB, userID uint) (*models.CartCoupon, error) {
	var applied models.CartCoupon
	err := db.Where("user_id = ?", userID).
		Order("applied_at desc, id desc").First(&applied).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &applied, nil
}

// reconcileAppliedCoupon re-validates the applied coupon against the
// current subtotal for the view path. Hard failures (and any failure in
// strict mode) remove the application; soft failures fall back to the
// stored discount snapshot.
func reconcileAppliedCoupon(db *gorm.DB, userID uint, groups []CartGroup, subtotal float64) (*string, float64, error) {
	applied, err := getAppliedCoupon(db, userID)
	if err != nil || applied == nil {
		return nil, 0, err
	}

	_, discount, cerr := ValidateAndCalculateDiscount(db, applied.CouponCode, userID, subtotal, groups, applied.ID)
	if cerr == nil {
		return &applied.CouponCode, discount, nil
	}

	if cerr.Hard() || strictRevalidation() {
		if err := db.Delete(&models.CartCoupon{}, applied.ID).Error; err != nil {
			return nil, 0, err
		}
		log.Printf("🧹 Removed coupon %q for user %d: %s", applied.CouponCode, userID, cerr.Message)
		return nil, 0, nil
	}

	return &applied.CouponCode, applied.DiscountAmount, nil
}

func strictRevalidation() bool {
	return os.Getenv("COUPON_STRICT_REVALIDATION") == "true"
}

type ApplyCouponInput struct {
	CouponCode string `json:"coupon_code" binding:"required"`
}

// POST /cart/apply-coupon
func ApplyCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input ApplyCouponInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "coupon_code is required"})
			return
		}

		var coupon *models.Coupon
		var discount float64
		var cerr *CouponError

		err := db.Transaction(func(tx *gorm.DB) error {
			cart, err := GetOrCreateActiveCart(tx, userID)
			if err != nil {
				return err
			}
			items, err := ActiveItems(tx, userID, cart.ID)
			if err != nil {
				return err
			}
			products, err := loadProducts(tx, items)
			if err != nil {
				return err
			}
			groups := GroupItems(items, products)
			subtotal := Subtotal(groups)

			// Re-applying replaces: at most one coupon per user.
			if err := tx.Where("user_id = ?", userID).Delete(&models.CartCoupon{}).Error; err != nil {
				return err
			}

			coupon, discount, cerr = ValidateAndCalculateDiscount(tx, input.CouponCode, userID, subtotal, groups, 0)
			if cerr != nil {
				return cerr
			}

			return tx.Create(&models.CartCoupon{
				UserID:         userID,
				CouponID:       coupon.ID,
				CouponCode:     coupon.CouponCode,
				DiscountAmount: discount,
			}).Error
		})

		if cerr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "code": cerr.Code, "message": cerr.Message})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to apply coupon"})
			return
		}

		auditControllers.Record(db, auditEntry(c, db, userID, models.AuditActionApply, models.AuditEntityCoupon, coupon.ID, map[string]any{
			"coupon_code":     coupon.CouponCode,
			"discount_amount": discount,
		}))

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": fmt.Sprintf("Coupon '%s' applied successfully", coupon.CouponCode),
			"data": gin.H{
				"coupon_code":     coupon.CouponCode,
				"discount_type":   coupon.DiscountType,
				"discount_amount": discount,
			},
		})
	}
}

// DELETE /cart/remove-coupon
//
// Idempotent: succeeds whether or not a coupon is applied.
func RemoveCoupon(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		result := db.Where("user_id = ?", userID).Delete(&models.CartCoupon{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to remove coupon"})
			return
		}

		if result.RowsAffected > 0 {
			auditControllers.Record(db, auditEntry(c, db, userID, models.AuditActionRemove, models.AuditEntityCoupon, 0, nil))
		}

		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Coupon removed from cart."})
	}
}

// GET /cart/list-coupons
//
// Lists coupons a user could redeem right now: active, inside their
// validity window and under the global usage cap.
func ListCoupons(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUserID(c); !ok {
			return
		}

		now := time.Now().UTC()
		var coupons []models.Coupon
		if err := db.Where("status = ?", models.CouponStatusActive).
			Where("valid_from IS NULL OR valid_from <= ?", now).
			Where("valid_until IS NULL OR valid_until >= ?", now).
			Order("min_order_amount asc").Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to fetch coupons"})
			return
		}

		redeemable := make([]gin.H, 0, len(coupons))
		for i := range coupons {
			coupon := &coupons[i]
			if coupon.MaxUses != nil {
				var uses int64
				if err := applicationCount(db, coupon, 0, 0).Count(&uses).Error; err != nil {
					continue
				}
				if uses >= int64(*coupon.MaxUses) {
					continue
				}
			}
			redeemable = append(redeemable, gin.H{
				"coupon_code":         coupon.CouponCode,
				"description":         coupon.Description,
				"discount_type":       coupon.DiscountType,
				"discount_value":      coupon.DiscountValue,
				"min_order_amount":    coupon.MinOrderAmount,
				"max_discount_amount": coupon.MaxDiscountAmount,
				"valid_until":         coupon.ValidUntil,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Coupons fetched successfully.",
			"data":    redeemable,
		})
	}
}
