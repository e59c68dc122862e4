package couponControllers

import (
	"net/http"
	"strings"

	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportCouponsToExcel downloads all coupons with their application
// counts for finance reconciliation.
func ExportCouponsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var coupons []models.Coupon
		if err := db.Order("created_at desc").Find(&coupons).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Coupons")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Code", "Type", "Value", "MinOrder", "MaxDiscount",
			"MaxUses", "PerUser", "Status", "PlanTypes", "ValidFrom", "ValidUntil", "Applications",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, coupon := range coupons {
			var uses int64
			db.Model(&models.CartCoupon{}).Where("coupon_id = ?", coupon.ID).Count(&uses)

			row := sheet.AddRow()
			row.AddCell().SetValue(coupon.ID)
			row.AddCell().SetValue(coupon.CouponCode)
			row.AddCell().SetValue(string(coupon.DiscountType))
			row.AddCell().SetValue(coupon.DiscountValue)
			row.AddCell().SetValue(coupon.MinOrderAmount)
			if coupon.MaxDiscountAmount != nil {
				row.AddCell().SetValue(*coupon.MaxDiscountAmount)
			} else {
				row.AddCell().SetValue("")
			}
			if coupon.MaxUses != nil {
				row.AddCell().SetValue(*coupon.MaxUses)
			} else {
				row.AddCell().SetValue("unlimited")
			}
			row.AddCell().SetValue(coupon.MaxUsesPerUser)
			row.AddCell().SetValue(string(coupon.Status))
			row.AddCell().SetValue(strings.Join(coupon.ConstraintPlanTypes, ","))
			if coupon.ValidFrom != nil {
				row.AddCell().SetValue(coupon.ValidFrom.Format("2006-01-02"))
			} else {
				row.AddCell().SetValue("")
			}
			if coupon.ValidUntil != nil {
				row.AddCell().SetValue(coupon.ValidUntil.Format("2006-01-02"))
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(uses)
		}

		c.Header("Content-Disposition", "attachment; filename=coupons.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
