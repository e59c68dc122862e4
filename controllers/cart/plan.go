package cartControllers

import (
	"fmt"

	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
	"gorm.io/gorm"
)

// Validation error codes returned with HTTP 422 on the add path.
const (
	CodePlanMismatch           = "plan_mismatch"
	CodeMemberCategoryConflict = "member_category_conflict"
	CodeDuplicateInCart        = "duplicate_in_cart"
)

// MemberConflict describes one member already booked on a different
// product in the same category.
type MemberConflict struct {
	MemberID            uint            `json:"member_id"`
	MemberName          string          `json:"member_name"`
	ExistingProductID   uint            `json:"existing_product_id"`
	ExistingProductName string          `json:"existing_product_name"`
	ExistingPlanType    models.PlanType `json:"existing_plan_type"`
}

type PlanError struct {
	Code      string           `json:"code"`
	Message   string           `json:"message"`
	Conflicts []MemberConflict `json:"conflicts,omitempty"`
}

func (e *PlanError) Error() string { return e.Message }

// ValidateAdd runs the add-to-cart business rules against the live rows
// of the active cart, in order: plan cardinality, member/category
// conflicts, duplicate purchase. Soft-deleted history never blocks an
// add because callers pass live rows only.
func ValidateAdd(db *gorm.DB, product *models.Product, memberIDs []uint, existing []models.CartItem) error {
	min, max := product.PlanType.MemberRange()
	if len(memberIDs) < min || len(memberIDs) > max {
		return &PlanError{
			Code:    CodePlanMismatch,
			Message: planMismatchMessage(product.PlanType, min, max),
		}
	}
	requested := make(map[uint]bool, len(memberIDs))
	for _, id := range memberIDs {
		if requested[id] {
			return &PlanError{
				Code:    CodePlanMismatch,
				Message: "Each member can appear only once in a purchase",
			}
		}
		requested[id] = true
	}

	existingProducts, err := loadProducts(db, existing)
	if err != nil {
		return err
	}

	var conflicts []MemberConflict
	flagged := make(map[uint]bool)
	for _, item := range existing {
		other := existingProducts[item.ProductID]
		if other == nil || other.ID == product.ID || other.CategoryID != product.CategoryID {
			continue
		}
		if !requested[item.MemberID] || flagged[item.MemberID] {
			continue
		}
		flagged[item.MemberID] = true
		conflicts = append(conflicts, MemberConflict{
			MemberID:            item.MemberID,
			MemberName:          memberName(db, item.MemberID),
			ExistingProductID:   other.ID,
			ExistingProductName: other.Name,
			ExistingPlanType:    other.PlanType,
		})
	}
	if len(conflicts) > 0 {
		return &PlanError{
			Code:      CodeMemberCategoryConflict,
			Message:   "One or more members already have a different test from this category in the cart",
			Conflicts: conflicts,
		}
	}

	// Same product with the same member set is a duplicate purchase.
	// Addresses are mutable per purchase and do not count.
	for _, group := range GroupItems(existing, existingProducts) {
		if group.Product == nil || group.Product.ID != product.ID {
			continue
		}
		if sameMemberSet(group.MemberIDs, memberIDs) {
			return &PlanError{
				Code:    CodeDuplicateInCart,
				Message: "This test is already in your cart for the selected members",
			}
		}
	}
	return nil
}

func planMismatchMessage(plan models.PlanType, min, max int) string {
	if min == max {
		return fmt.Sprintf("A %s plan requires exactly %d member(s)", plan, min)
	}
	return fmt.Sprintf("A %s plan requires between %d and %d members", plan, min, max)
}

func memberName(db *gorm.DB, memberID uint) string {
	var member models.Member
	if err := db.Select("name").First(&member, memberID).Error; err != nil {
		return ""
	}
	return member.Name
}

func sameMemberSet(a, b []uint) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[uint]bool, len(a))
	for _, id := range a {
		set[id] = true
	}
	for _, id := range b {
		if !set[id] {
			return false
		}
	}
	return true
}
