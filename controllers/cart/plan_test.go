package cartControllers

import (
	"errors"
	"testing"

	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
)

func planCode(t *testing.T, err error) string {
	t.Helper()
	if err == nil {
		return ""
	}
	var planErr *PlanError
	if !errors.As(err, &planErr) {
		t.Fatalf("got error %v, want a plan validation error", err)
	}
	return planErr.Code
}

func TestValidateAddPlanCardinality(t *testing.T) {
	db := setupTestDB(t)

	cases := []struct {
		name    string
		plan    models.PlanType
		members []uint
		wantErr bool
	}{
		{"single with one member", models.PlanSingle, []uint{1}, false},
		{"single with two members", models.PlanSingle, []uint{1, 2}, true},
		{"couple with one member", models.PlanCouple, []uint{1}, true},
		{"couple with two members", models.PlanCouple, []uint{1, 2}, false},
		{"couple with three members", models.PlanCouple, []uint{1, 2, 3}, true},
		{"family with two members", models.PlanFamily, []uint{1, 2}, true},
		{"family with three members", models.PlanFamily, []uint{1, 2, 3}, false},
		{"family with four members", models.PlanFamily, []uint{1, 2, 3, 4}, false},
		{"family with five members", models.PlanFamily, []uint{1, 2, 3, 4, 5}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			product := &models.Product{ID: 1, PlanType: tc.plan, CategoryID: 1}
			err := ValidateAdd(db, product, tc.members, nil)
			if tc.wantErr {
				if planCode(t, err) != CodePlanMismatch {
					t.Fatalf("got error %v, want code %s", err, CodePlanMismatch)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateAddRejectsRepeatedMember(t *testing.T) {
	db := setupTestDB(t)
	product := &models.Product{ID: 1, PlanType: models.PlanCouple, CategoryID: 1}

	err := ValidateAdd(db, product, []uint{7, 7}, nil)
	if planCode(t, err) != CodePlanMismatch {
		t.Fatalf("got error %v, want code %s for a repeated member", err, CodePlanMismatch)
	}
}

func TestValidateAddMemberCategoryConflict(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "divya")
	category := seedCategory(t, db, "Carrier Screening")
	booked := seedProduct(t, db, "Carrier Basic", models.PlanSingle, 1000, 800, category.ID)
	requested := seedProduct(t, db, "Carrier Plus", models.PlanSingle, 2000, 1600, category.ID)
	member := seedMember(t, db, user.ID, "Divya")

	existing := []models.CartItem{
		{ID: 1, UserID: user.ID, ProductID: booked.ID, MemberID: member.ID, Quantity: 1, GroupID: "g1"},
	}

	err := ValidateAdd(db, &requested, []uint{member.ID}, existing)
	var planErr *PlanError
	if !errors.As(err, &planErr) || planErr.Code != CodeMemberCategoryConflict {
		t.Fatalf("got error %v, want code %s", err, CodeMemberCategoryConflict)
	}
	if len(planErr.Conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(planErr.Conflicts))
	}
	conflict := planErr.Conflicts[0]
	if conflict.MemberID != member.ID || conflict.MemberName != "Divya" {
		t.Fatalf("got conflict member %d %q, want %d %q", conflict.MemberID, conflict.MemberName, member.ID, "Divya")
	}
	if conflict.ExistingProductID != booked.ID || conflict.ExistingProductName != "Carrier Basic" {
		t.Fatalf("got conflict product %d %q, want the already-booked product", conflict.ExistingProductID, conflict.ExistingProductName)
	}
}

func TestValidateAddAllowsSameCategoryForDifferentMember(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "kiran")
	category := seedCategory(t, db, "Wellness")
	booked := seedProduct(t, db, "Wellness A", models.PlanSingle, 1000, 800, category.ID)
	requested := seedProduct(t, db, "Wellness B", models.PlanSingle, 1200, 900, category.ID)
	m1 := seedMember(t, db, user.ID, "Kiran")
	m2 := seedMember(t, db, user.ID, "Asha")

	existing := []models.CartItem{
		{ID: 1, UserID: user.ID, ProductID: booked.ID, MemberID: m1.ID, Quantity: 1, GroupID: "g1"},
	}
	if err := ValidateAdd(db, &requested, []uint{m2.ID}, existing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateAddDuplicatePurchase(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "sana")
	category := seedCategory(t, db, "Couples")
	product := seedProduct(t, db, "Couple Panel", models.PlanCouple, 3000, 2500, category.ID)
	m1 := seedMember(t, db, user.ID, "Sana")
	m2 := seedMember(t, db, user.ID, "Omar")

	existing := []models.CartItem{
		{ID: 1, UserID: user.ID, ProductID: product.ID, MemberID: m1.ID, AddressID: 1, Quantity: 1, GroupID: "g1"},
		{ID: 2, UserID: user.ID, ProductID: product.ID, MemberID: m2.ID, AddressID: 1, Quantity: 1, GroupID: "g1"},
	}

	// Same members, different address: still the same purchase.
	err := ValidateAdd(db, &product, []uint{m2.ID, m1.ID}, existing)
	if planCode(t, err) != CodeDuplicateInCart {
		t.Fatalf("got error %v, want code %s", err, CodeDuplicateInCart)
	}

	// A different member pairing is a new purchase.
	m3 := seedMember(t, db, user.ID, "Zara")
	if err := ValidateAdd(db, &product, []uint{m1.ID, m3.ID}, existing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
