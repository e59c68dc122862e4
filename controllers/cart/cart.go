package cartControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	auditControllers "github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/controllers/audit"
	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberAddressInput struct {
	MemberID  uint `json:"member_id" binding:"required"`
	AddressID uint `json:"address_id" binding:"required"`
}

type CartAddInput struct {
	ProductID        uint                 `json:"product_id" binding:"required"`
	MemberAddressMap []MemberAddressInput `json:"member_address_map" binding:"required,min=1,dive"`
	Quantity         int                  `json:"quantity" binding:"omitempty,min=1"`
}

type CartUpdateInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

func currentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	userID, ok := val.(uint)
	if !ok || userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func auditEntry(c *gin.Context, db *gorm.DB, userID uint, action, entityType string, entityID uint, details map[string]any) models.AuditLog {
	return models.AuditLog{
		UserID:     userID,
		Username:   auditUsername(db, userID),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
		IPAddress:  c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	}
}

// auditUsername resolves the display name stamped on audit rows,
// falling back to the mobile number for profiles without a name.
func auditUsername(db *gorm.DB, userID uint) string {
	var user models.User
	if err := db.Select("name", "mobile").First(&user, userID).Error; err != nil {
		return ""
	}
	if user.Name != "" {
		return user.Name
	}
	return user.Mobile
}

func respondPlanError(c *gin.Context, planErr *PlanError) {
	body := gin.H{
		"status":  "error",
		"code":    planErr.Code,
		"message": planErr.Message,
	}
	if len(planErr.Conflicts) > 0 {
		body["detail"] = gin.H{"conflicts": planErr.Conflicts}
	}
	c.JSON(http.StatusUnprocessableEntity, body)
}

// POST /cart/add
//
// A purchase of a plan-typed product by N members becomes N rows
// sharing one group id, written atomically.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var input CartAddInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid input: " + err.Error()})
			return
		}
		if input.Quantity == 0 {
			input.Quantity = 1
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to validate product"})
			}
			return
		}

		memberIDs := make([]uint, 0, len(input.MemberAddressMap))
		addressIDs := make([]uint, 0, len(input.MemberAddressMap))
		for _, pair := range input.MemberAddressMap {
			memberIDs = append(memberIDs, pair.MemberID)
			addressIDs = append(addressIDs, pair.AddressID)
		}
		if !ownsAll(db, &models.Member{}, userID, memberIDs) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Member not found"})
			return
		}
		if !ownsAll(db, &models.Address{}, userID, addressIDs) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Address not found"})
			return
		}

		groupID := uuid.NewString()
		var cartID uint
		cartItemIDs := make([]uint, 0, len(input.MemberAddressMap))

		err := db.Transaction(func(tx *gorm.DB) error {
			cart, err := GetOrCreateActiveCart(tx, userID)
			if err != nil {
				return err
			}
			cartID = cart.ID

			existing, err := ActiveItems(tx, userID, cart.ID)
			if err != nil {
				return err
			}
			if err := ValidateAdd(tx, &product, memberIDs, existing); err != nil {
				return err
			}

			rows := make([]models.CartItem, 0, len(input.MemberAddressMap))
			for _, pair := range input.MemberAddressMap {
				rows = append(rows, models.CartItem{
					UserID:    userID,
					CartID:    cart.ID,
					ProductID: product.ID,
					MemberID:  pair.MemberID,
					AddressID: pair.AddressID,
					Quantity:  input.Quantity,
					GroupID:   groupID,
				})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
			for _, row := range rows {
				cartItemIDs = append(cartItemIDs, row.ID)
			}
			return touchCart(tx, cart.ID)
		})

		var planErr *PlanError
		if errors.As(err, &planErr) {
			respondPlanError(c, planErr)
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to add item to cart"})
			return
		}

		entry := auditEntry(c, db, userID, models.AuditActionAdd, models.AuditEntityCartItem, cartItemIDs[0], map[string]any{
			"product_id": product.ID,
			"group_id":   groupID,
			"member_ids": memberIDs,
			"quantity":   input.Quantity,
		})
		entry.CartID = cartID
		auditControllers.Record(db, entry)

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Product added to cart successfully.",
			"data": gin.H{
				"cart_id":       cartID,
				"group_id":      groupID,
				"cart_item_ids": cartItemIDs,
				"member_ids":    memberIDs,
				"product_id":    product.ID,
				"quantity":      input.Quantity,
				"price":         product.Price,
				"special_price": product.SpecialPrice,
				"total_amount":  float64(input.Quantity) * product.SpecialPrice,
			},
		})
	}
}

// PUT /cart/update/:cart_item_id
//
// Quantity is replicated across a purchase group, so the whole group is
// updated through any of its rows.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		itemID, err := strconv.ParseUint(c.Param("cart_item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid cart item id"})
			return
		}

		var input CartUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", itemID, userID, false).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Cart item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to fetch cart item"})
			}
			return
		}

		oldQuantity := item.Quantity
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := groupRows(tx, &item).Update("quantity", input.Quantity).Error; err != nil {
				return err
			}
			return touchCart(tx, item.CartID)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to update cart item"})
			return
		}

		entry := auditEntry(c, db, userID, models.AuditActionUpdate, models.AuditEntityCartItem, item.ID, map[string]any{
			"product_id":   item.ProductID,
			"group_id":     item.GroupID,
			"old_quantity": oldQuantity,
			"new_quantity": input.Quantity,
		})
		entry.CartID = item.CartID
		auditControllers.Record(db, entry)

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "Cart item updated successfully.",
			"data": gin.H{
				"cart_item_id": item.ID,
				"group_id":     item.GroupID,
				"product_id":   item.ProductID,
				"quantity":     input.Quantity,
			},
		})
	}
}

// DELETE /cart/delete/:cart_item_id
//
// Soft-deletes the whole purchase group the row belongs to.
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}
		itemID, err := strconv.ParseUint(c.Param("cart_item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid cart item id"})
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND user_id = ? AND is_deleted = ?", itemID, userID, false).
			First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Cart item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to fetch cart item"})
			}
			return
		}

		var removed int64
		err = db.Transaction(func(tx *gorm.DB) error {
			result := groupRows(tx, &item).Update("is_deleted", true)
			if result.Error != nil {
				return result.Error
			}
			removed = result.RowsAffected
			return touchCart(tx, item.CartID)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to delete item"})
			return
		}

		entry := auditEntry(c, db, userID, models.AuditActionDelete, models.AuditEntityCartItem, item.ID, map[string]any{
			"product_id":   item.ProductID,
			"group_id":     item.GroupID,
			"rows_removed": removed,
		})
		entry.CartID = item.CartID
		auditControllers.Record(db, entry)

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": fmt.Sprintf("Cart item %d deleted successfully.", item.ID),
		})
	}
}

// DELETE /cart/clear
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var cartID uint
		var cleared int64
		err := db.Transaction(func(tx *gorm.DB) error {
			cart, err := GetOrCreateActiveCart(tx, userID)
			if err != nil {
				return err
			}
			cartID = cart.ID

			result := tx.Model(&models.CartItem{}).
				Where("user_id = ? AND cart_id = ? AND is_deleted = ?", userID, cart.ID, false).
				Update("is_deleted", true)
			if result.Error != nil {
				return result.Error
			}
			cleared = result.RowsAffected

			if err := tx.Where("user_id = ?", userID).Delete(&models.CartCoupon{}).Error; err != nil {
				return err
			}
			return touchCart(tx, cart.ID)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to clear cart"})
			return
		}

		entry := auditEntry(c, db, userID, models.AuditActionClear, models.AuditEntityCart, cartID, map[string]any{
			"items_deleted": cleared,
		})
		entry.CartID = cartID
		auditControllers.Record(db, entry)

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": fmt.Sprintf("Cleared %d item(s) from the cart.", cleared),
		})
	}
}

// GET /cart/view
//
// Read path: repairs the active-cart invariant, re-validates any
// applied coupon and returns grouped items with totals.
func ViewCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		cart, err := GetOrCreateActiveCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to fetch cart"})
			return
		}

		items, err := ActiveItems(db, userID, cart.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to fetch cart"})
			return
		}
		products, err := loadProducts(db, items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to fetch cart"})
			return
		}
		groups := GroupItems(items, products)
		subtotal := Subtotal(groups)

		couponCode, couponAmount, err := reconcileAppliedCoupon(db, userID, groups, subtotal)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to fetch cart"})
			return
		}

		summary := BuildSummary(groups, couponCode, couponAmount, DeliveryCharge())

		cartItems := make([]gin.H, 0, len(groups))
		for _, group := range groups {
			if group.Product == nil {
				// Product was removed upstream; the stale group is
				// hidden rather than surfaced as an error.
				continue
			}
			cartItems = append(cartItems, gin.H{
				"cart_item_id":   group.Items[0].ID,
				"group_id":       group.GroupID,
				"product_id":     group.Product.ID,
				"product_name":   group.Product.Name,
				"product_images": group.Product.Images,
				"plan_type":      group.Product.PlanType,
				"price":          group.Product.Price,
				"special_price":  group.Product.SpecialPrice,
				"quantity":       group.Quantity,
				"member_ids":     group.MemberIDs,
				"address_ids":    group.AddressIDs,
				"total_amount":   group.Total(),
			})
		}

		username := auditUsername(db, userID)

		entry := auditEntry(c, db, userID, models.AuditActionView, models.AuditEntityCart, cart.ID, map[string]any{
			"items_count": len(cartItems),
			"grand_total": summary.GrandTotal,
		})
		entry.CartID = cart.ID
		auditControllers.Record(db, entry)

		message := "Cart data fetched successfully."
		if len(cartItems) == 0 {
			message = "Cart is empty."
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": message,
			"data": gin.H{
				"user_id":      userID,
				"username":     username,
				"cart_id":      cart.ID,
				"cart_summary": summary,
				"cart_items":   cartItems,
			},
		})
	}
}

// groupRows scopes a mutation to every live row of the item's purchase
// group; legacy rows without a group id form their own group.
func groupRows(tx *gorm.DB, item *models.CartItem) *gorm.DB {
	q := tx.Model(&models.CartItem{}).
		Where("user_id = ? AND cart_id = ? AND is_deleted = ?", item.UserID, item.CartID, false)
	if item.GroupID != "" {
		return q.Where("group_id = ?", item.GroupID)
	}
	return q.Where("id = ?", item.ID)
}

func ownsAll(db *gorm.DB, model any, userID uint, ids []uint) bool {
	uniq := make(map[uint]bool, len(ids))
	for _, id := range ids {
		uniq[id] = true
	}
	distinct := make([]uint, 0, len(uniq))
	for id := range uniq {
		distinct = append(distinct, id)
	}
	var count int64
	if err := db.Model(model).Where("id IN ? AND user_id = ?", distinct, userID).
		Count(&count).Error; err != nil {
		return false
	}
	return count == int64(len(distinct))
}
