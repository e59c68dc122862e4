package cartControllers

import (
	"testing"

	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
)

func TestBuildSummarySingleProduct(t *testing.T) {
	groups := []CartGroup{{
		GroupID:  "g1",
		Product:  &models.Product{ID: 1, Price: 1000, SpecialPrice: 800},
		Quantity: 1,
		Items:    []models.CartItem{{ID: 1}},
	}}

	summary := BuildSummary(groups, nil, 0, 0)
	if summary.TotalItems != 1 {
		t.Fatalf("got total_items %d, want 1", summary.TotalItems)
	}
	if summary.SubtotalAmount != 800 {
		t.Fatalf("got subtotal %.2f, want 800", summary.SubtotalAmount)
	}
	if summary.DiscountAmount != 200 {
		t.Fatalf("got discount %.2f, want 200", summary.DiscountAmount)
	}
	if summary.GrandTotal != 800 {
		t.Fatalf("got grand total %.2f, want 800 (product discount must not be subtracted twice)", summary.GrandTotal)
	}
	if summary.YouSave != 200 {
		t.Fatalf("got you_save %.2f, want 200", summary.YouSave)
	}
	if summary.CouponCode != nil {
		t.Fatalf("got coupon code %v, want nil", *summary.CouponCode)
	}
}

func TestBuildSummaryWithCoupon(t *testing.T) {
	groups := []CartGroup{{
		GroupID:  "g1",
		Product:  &models.Product{ID: 1, Price: 1000, SpecialPrice: 800},
		Quantity: 1,
	}}
	code := "SAVE10"

	summary := BuildSummary(groups, &code, 80, 0)
	if summary.GrandTotal != 720 {
		t.Fatalf("got grand total %.2f, want 720 (subtotal minus coupon only)", summary.GrandTotal)
	}
	if summary.DiscountAmount != 200 {
		t.Fatalf("got discount %.2f, want the display-only 200", summary.DiscountAmount)
	}
	if summary.YouSave != 280 {
		t.Fatalf("got you_save %.2f, want 280", summary.YouSave)
	}
	if summary.CouponAmount != 80 || summary.CouponCode == nil || *summary.CouponCode != "SAVE10" {
		t.Fatalf("got coupon %v/%.2f, want SAVE10/80", summary.CouponCode, summary.CouponAmount)
	}
}

func TestBuildSummaryGroupPricedOncePerGroup(t *testing.T) {
	// A family purchase: three member rows, one price.
	family := &models.Product{ID: 2, Price: 5000, SpecialPrice: 4200}
	groups := []CartGroup{{
		GroupID:  "fam",
		Product:  family,
		Quantity: 1,
		Items:    []models.CartItem{{ID: 1}, {ID: 2}, {ID: 3}},
	}}

	summary := BuildSummary(groups, nil, 0, 0)
	if summary.TotalItems != 1 {
		t.Fatalf("got total_items %d, want 1 group", summary.TotalItems)
	}
	if summary.SubtotalAmount != 4200 {
		t.Fatalf("got subtotal %.2f, want 4200 (not multiplied per member)", summary.SubtotalAmount)
	}
	if summary.DiscountAmount != 800 {
		t.Fatalf("got discount %.2f, want 800", summary.DiscountAmount)
	}
}

func TestBuildSummarySkipsGroupsWithMissingProduct(t *testing.T) {
	groups := []CartGroup{
		{
			GroupID:  "live",
			Product:  &models.Product{ID: 1, Price: 1000, SpecialPrice: 800},
			Quantity: 1,
		},
		{
			GroupID:  "stale",
			Product:  nil,
			Quantity: 1,
			Items:    []models.CartItem{{ID: 9}},
		},
	}

	summary := BuildSummary(groups, nil, 0, 0)
	if summary.TotalItems != 1 {
		t.Fatalf("got total_items %d, want 1: a group whose product is gone is not an item", summary.TotalItems)
	}
	if summary.SubtotalAmount != 800 || summary.DiscountAmount != 200 {
		t.Fatalf("got subtotal %.2f discount %.2f, want the live group only", summary.SubtotalAmount, summary.DiscountAmount)
	}
}

func TestBuildSummaryGrandTotalNeverNegative(t *testing.T) {
	groups := []CartGroup{{
		GroupID:  "g1",
		Product:  &models.Product{ID: 1, Price: 100, SpecialPrice: 100},
		Quantity: 1,
	}}

	summary := BuildSummary(groups, nil, 500, 0)
	if summary.GrandTotal != 0 {
		t.Fatalf("got grand total %.2f, want clamp at 0", summary.GrandTotal)
	}
}

func TestBuildSummaryIncludesDelivery(t *testing.T) {
	groups := []CartGroup{{
		GroupID:  "g1",
		Product:  &models.Product{ID: 1, Price: 1000, SpecialPrice: 800},
		Quantity: 2,
	}}

	summary := BuildSummary(groups, nil, 0, 49)
	if summary.SubtotalAmount != 1600 {
		t.Fatalf("got subtotal %.2f, want 1600", summary.SubtotalAmount)
	}
	if summary.DeliveryCharge != 49 || summary.GrandTotal != 1649 {
		t.Fatalf("got delivery %.2f grand %.2f, want 49 and 1649", summary.DeliveryCharge, summary.GrandTotal)
	}
}

func TestBuildSummaryEmptyCart(t *testing.T) {
	summary := BuildSummary(nil, nil, 0, 0)
	if summary.TotalItems != 0 || summary.SubtotalAmount != 0 || summary.GrandTotal != 0 {
		t.Fatalf("got %+v, want an all-zero summary", summary)
	}
	if summary.CouponCode != nil {
		t.Fatalf("got coupon code %q, want nil", *summary.CouponCode)
	}
}

func TestDeliveryChargeDefaultsToZero(t *testing.T) {
	t.Setenv("DELIVERY_CHARGE", "")
	if got := DeliveryCharge(); got != 0 {
		t.Fatalf("got %.2f, want 0", got)
	}

	t.Setenv("DELIVERY_CHARGE", "49.5")
	if got := DeliveryCharge(); got != 49.5 {
		t.Fatalf("got %.2f, want 49.5", got)
	}

	t.Setenv("DELIVERY_CHARGE", "-5")
	if got := DeliveryCharge(); got != 0 {
		t.Fatalf("got %.2f, want 0 for a negative value", got)
	}
}
