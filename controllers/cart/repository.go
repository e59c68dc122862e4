package cartControllers

import (
	"log"
	"time"

	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
	"gorm.io/gorm"
)

// GetOrCreateActiveCart resolves the single active cart for a user. It
// is the one authority for "which cart is active" and is safe to call
// from every read and write path:
//   - no active cart  -> create one
//   - one active cart -> return it
//   - several         -> keep the oldest, deactivate the rest
//
// Duplicates can appear when two requests race on the create path;
// there is no unique constraint, so the repair happens on read.
func GetOrCreateActiveCart(db *gorm.DB, userID uint) (*models.Cart, error) {
	var carts []models.Cart
	if err := db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("id asc").Find(&carts).Error; err != nil {
		return nil, err
	}

	switch len(carts) {
	case 0:
		cart := models.Cart{UserID: userID, IsActive: true, LastActivityAt: time.Now()}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	case 1:
		return &carts[0], nil
	default:
		keep := carts[0]
		staleIDs := make([]uint, 0, len(carts)-1)
		for _, c := range carts[1:] {
			staleIDs = append(staleIDs, c.ID)
		}
		if err := db.Model(&models.Cart{}).Where("id IN ?", staleIDs).
			Update("is_active", false).Error; err != nil {
			return nil, err
		}
		log.Printf("⚠️ Repaired %d duplicate active cart(s) for user %d, kept cart %d", len(staleIDs), userID, keep.ID)
		return &keep, nil
	}
}

// ActiveItems returns the live rows of a cart. Every query over cart
// contents goes through here so the is_deleted filter is applied in
// exactly one place.
func ActiveItems(db *gorm.DB, userID, cartID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Where("user_id = ? AND cart_id = ? AND is_deleted = ?", userID, cartID, false).
		Order("id asc").Find(&items).Error
	return items, err
}

func touchCart(db *gorm.DB, cartID uint) error {
	return db.Model(&models.Cart{}).Where("id = ?", cartID).
		Update("last_activity_at", time.Now()).Error
}
