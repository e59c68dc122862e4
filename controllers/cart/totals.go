package cartControllers

import (
	"os"
	"strconv"
)

// CartSummary is the totals block of the cart view response.
type CartSummary struct {
	TotalItems     int     `json:"total_items"`
	SubtotalAmount float64 `json:"subtotal_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	CouponCode     *string `json:"coupon_code"`
	CouponAmount   float64 `json:"coupon_amount"`
	YouSave        float64 `json:"you_save"`
	DeliveryCharge float64 `json:"delivery_charge"`
	GrandTotal     float64 `json:"grand_total"`
}

// Subtotal folds group totals; groups with a missing product contribute
// nothing.
func Subtotal(groups []CartGroup) float64 {
	var subtotal float64
	for _, g := range groups {
		subtotal += g.Total()
	}
	return subtotal
}

// BuildSummary computes the presentation totals.
//
// discount_amount is display-only: SpecialPrice already nets out the
// product discount, so grand_total subtracts the coupon amount ONLY.
// Subtracting discount_amount again would double-discount.
func BuildSummary(groups []CartGroup, couponCode *string, couponAmount, deliveryCharge float64) CartSummary {
	subtotal := Subtotal(groups)

	// Groups whose product is gone are hidden from the response, so
	// they are not counted either.
	var rendered int
	var discount float64
	for _, g := range groups {
		if g.Product == nil {
			continue
		}
		rendered++
		discount += g.ProductDiscount()
	}

	grandTotal := subtotal + deliveryCharge - couponAmount
	if grandTotal < 0 {
		grandTotal = 0
	}

	return CartSummary{
		TotalItems:     rendered,
		SubtotalAmount: subtotal,
		DiscountAmount: discount,
		CouponCode:     couponCode,
		CouponAmount:   couponAmount,
		YouSave:        discount + couponAmount,
		DeliveryCharge: deliveryCharge,
		GrandTotal:     grandTotal,
	}
}

// DeliveryCharge reads the flat delivery fee from the environment.
// Delivery is currently free, so the default is 0.
func DeliveryCharge() float64 {
	if raw := os.Getenv("DELIVERY_CHARGE"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 {
			return v
		}
	}
	return 0
}
