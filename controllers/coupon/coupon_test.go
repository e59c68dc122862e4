package couponControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Coupon{}, &models.CartCoupon{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func newAdminRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	admin := r.Group("/admin")
	{
		admin.POST("/coupons", CreateCoupon(db))
		admin.PUT("/coupons/:id", UpdateCoupon(db))
		admin.GET("/coupons", GetAllCoupons(db))
		admin.DELETE("/coupons/:id", DeleteCoupon(db))
	}
	return r
}

func postJSON(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&buf).Encode(payload); err != nil {
			t.Fatalf("failed to encode payload: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCouponNormalizesCode(t *testing.T) {
	db := setupTestDB(t)
	r := newAdminRouter(db)

	w := postJSON(t, r, http.MethodPost, "/admin/coupons", map[string]any{
		"coupon_code":    " save10 ",
		"discount_type":  "percentage",
		"discount_value": 10,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", w.Code, w.Body.String())
	}

	var coupon models.Coupon
	if err := db.First(&coupon).Error; err != nil {
		t.Fatalf("no coupon stored: %v", err)
	}
	if coupon.CouponCode != "SAVE10" {
		t.Fatalf("got code %q, want uppercase trimmed SAVE10", coupon.CouponCode)
	}
	if coupon.Status != models.CouponStatusActive {
		t.Fatalf("got status %q, want default active", coupon.Status)
	}
	if coupon.MaxUsesPerUser != 1 {
		t.Fatalf("got max_uses_per_user %d, want default 1", coupon.MaxUsesPerUser)
	}
	if coupon.ConstraintKind != models.ConstraintNone {
		t.Fatalf("got constraint kind %q, want none", coupon.ConstraintKind)
	}
}

func TestCreateCouponValidationRules(t *testing.T) {
	db := setupTestDB(t)
	r := newAdminRouter(db)
	from := time.Now().UTC()
	until := from.Add(-time.Hour)

	cases := []struct {
		name    string
		payload map[string]any
	}{
		{"percentage over 100", map[string]any{
			"coupon_code": "TOOBIG", "discount_type": "percentage", "discount_value": 150,
		}},
		{"window out of order", map[string]any{
			"coupon_code": "BACKWARDS", "discount_type": "fixed", "discount_value": 50,
			"valid_from": from, "valid_until": until,
		}},
		{"unknown plan type", map[string]any{
			"coupon_code": "BADPLAN", "discount_type": "fixed", "discount_value": 50,
			"plan_types": []string{"quartet"},
		}},
		{"unknown discount type", map[string]any{
			"coupon_code": "BADTYPE", "discount_type": "bogof", "discount_value": 50,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postJSON(t, r, http.MethodPost, "/admin/coupons", tc.payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("got status %d, want 400: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestCreateCouponWithPlanConstraint(t *testing.T) {
	db := setupTestDB(t)
	r := newAdminRouter(db)

	w := postJSON(t, r, http.MethodPost, "/admin/coupons", map[string]any{
		"coupon_code":    "FAMILY20",
		"discount_type":  "percentage",
		"discount_value": 20,
		"plan_types":     []string{"family"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("got status %d, want 201: %s", w.Code, w.Body.String())
	}

	var coupon models.Coupon
	if err := db.First(&coupon).Error; err != nil {
		t.Fatalf("no coupon stored: %v", err)
	}
	if coupon.ConstraintKind != models.ConstraintPlanType {
		t.Fatalf("got constraint kind %q, want plan_type", coupon.ConstraintKind)
	}
	if len(coupon.ConstraintPlanTypes) != 1 || coupon.ConstraintPlanTypes[0] != "family" {
		t.Fatalf("got constraint plans %v, want [family]", coupon.ConstraintPlanTypes)
	}
}

func TestCreateCouponDuplicateCode(t *testing.T) {
	db := setupTestDB(t)
	r := newAdminRouter(db)
	payload := map[string]any{"coupon_code": "DUP", "discount_type": "fixed", "discount_value": 50}

	if w := postJSON(t, r, http.MethodPost, "/admin/coupons", payload); w.Code != http.StatusCreated {
		t.Fatalf("first create failed: %s", w.Body.String())
	}
	if w := postJSON(t, r, http.MethodPost, "/admin/coupons", payload); w.Code != http.StatusConflict {
		t.Fatalf("got status %d on duplicate code, want 409", w.Code)
	}
}

func TestUpdateCouponReplacesConstraint(t *testing.T) {
	db := setupTestDB(t)
	r := newAdminRouter(db)

	postJSON(t, r, http.MethodPost, "/admin/coupons", map[string]any{
		"coupon_code": "EVOLVE", "discount_type": "fixed", "discount_value": 50,
		"plan_types": []string{"couple"},
	})
	var coupon models.Coupon
	if err := db.First(&coupon).Error; err != nil {
		t.Fatalf("no coupon stored: %v", err)
	}

	w := postJSON(t, r, http.MethodPut, fmt.Sprintf("/admin/coupons/%d", coupon.ID), map[string]any{
		"coupon_code": "EVOLVE", "discount_type": "fixed", "discount_value": 75,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}

	if err := db.First(&coupon, coupon.ID).Error; err != nil {
		t.Fatalf("failed to reload coupon: %v", err)
	}
	if coupon.DiscountValue != 75 {
		t.Fatalf("got discount %v, want 75", coupon.DiscountValue)
	}
	if coupon.ConstraintKind != models.ConstraintNone || len(coupon.ConstraintPlanTypes) != 0 {
		t.Fatalf("got constraint %q %v, want it cleared", coupon.ConstraintKind, coupon.ConstraintPlanTypes)
	}
}

func TestGetAllCouponsStatusFilter(t *testing.T) {
	db := setupTestDB(t)
	r := newAdminRouter(db)
	seed := []models.Coupon{
		{CouponCode: "A1", DiscountType: models.CouponTypeFixed, DiscountValue: 10, Status: models.CouponStatusActive},
		{CouponCode: "A2", DiscountType: models.CouponTypeFixed, DiscountValue: 10, Status: models.CouponStatusInactive},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("failed to seed coupon: %v", err)
		}
	}

	w := postJSON(t, r, http.MethodGet, "/admin/coupons?status=inactive", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want 200: %s", w.Code, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	data := body["data"].([]any)
	if len(data) != 1 {
		t.Fatalf("got %d coupons, want 1 inactive", len(data))
	}
	if data[0].(map[string]any)["coupon_code"] != "A2" {
		t.Fatalf("got %v, want A2", data[0])
	}
}
