package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

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
	if err := db.AutoMigrate(
		&models.User{},
		&models.Member{},
		&models.Address{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Coupon{},
		&models.CartCoupon{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{Mobile: "99" + name, Name: name}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, name string, plan models.PlanType, price, special float64, categoryID uint) models.Product {
	t.Helper()
	_, maxMembers := plan.MemberRange()
	product := models.Product{
		Name:         name,
		Price:        price,
		SpecialPrice: special,
		PlanType:     plan,
		MaxMembers:   maxMembers,
		CategoryID:   categoryID,
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("failed to seed product: %v", err)
	}
	return product
}

func seedMember(t *testing.T, db *gorm.DB, userID uint, name string) models.Member {
	t.Helper()
	member := models.Member{UserID: userID, Name: name, Relation: "self"}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("failed to seed member: %v", err)
	}
	return member
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) models.Address {
	t.Helper()
	address := models.Address{
		UserID:        userID,
		StreetAddress: "12 MG Road",
		City:          "Bengaluru",
		State:         "Karnataka",
		PostalCode:    "560001",
	}
	if err := db.Create(&address).Error; err != nil {
		t.Fatalf("failed to seed address: %v", err)
	}
	return address
}

// newCartRouter builds a gin engine with the cart routes and a stub
// auth middleware injecting the given user.
func newCartRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	cartGroup := r.Group("/cart")
	{
		cartGroup.POST("/add", AddToCart(db))
		cartGroup.PUT("/update/:cart_item_id", UpdateCartItem(db))
		cartGroup.DELETE("/delete/:cart_item_id", DeleteCartItem(db))
		cartGroup.DELETE("/clear", ClearCart(db))
		cartGroup.GET("/view", ViewCart(db))
		cartGroup.POST("/apply-coupon", ApplyCoupon(db))
		cartGroup.DELETE("/remove-coupon", RemoveCoupon(db))
		cartGroup.GET("/list-coupons", ListCoupons(db))
	}
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}

// addInput builds a /cart/add payload for the given member/address
// pairs.
func addInput(productID uint, quantity int, pairs ...[2]uint) map[string]any {
	mam := make([]map[string]any, 0, len(pairs))
	for _, pair := range pairs {
		mam = append(mam, map[string]any{"member_id": pair[0], "address_id": pair[1]})
	}
	return map[string]any{
		"product_id":         productID,
		"member_address_map": mam,
		"quantity":           quantity,
	}
}
