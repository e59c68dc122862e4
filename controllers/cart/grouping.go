package cartControllers

import (
	"fmt"

	"github.com/Swatiiiishettyyyy/Nucleotide-website-sub001/models"
	"gorm.io/gorm"
)

// CartGroup is one logical purchase: all rows created together for a
// plan-typed product, sharing a group id. Quantity is identical across
// the rows; every write path keeps it in sync.
type CartGroup struct {
	GroupID    string
	Product    *models.Product // nil when the product was soft-deleted upstream
	Quantity   int
	Items      []models.CartItem
	MemberIDs  []uint
	AddressIDs []uint
}

// Total is the group's contribution to the cart subtotal. Groups whose
// product is gone contribute nothing and are dropped from the response.
func (g CartGroup) Total() float64 {
	if g.Product == nil {
		return 0
	}
	return float64(g.Quantity) * g.Product.SpecialPrice
}

// ProductDiscount is the display-only saving versus MRP, counted once
// per group rather than once per member row.
func (g CartGroup) ProductDiscount() float64 {
	if g.Product == nil {
		return 0
	}
	return float64(g.Quantity) * (g.Product.Price - g.Product.SpecialPrice)
}

// GroupItems partitions live cart rows into purchase groups, preserving
// insertion order. Legacy rows without a group id become singleton
// groups keyed by their own row id.
func GroupItems(items []models.CartItem, products map[uint]*models.Product) []CartGroup {
	var order []string
	byKey := make(map[string]*CartGroup)

	for _, item := range items {
		key := item.GroupID
		if key == "" {
			key = fmt.Sprintf("single_%d", item.ID)
		}
		group, ok := byKey[key]
		if !ok {
			group = &CartGroup{
				GroupID:  key,
				Product:  products[item.ProductID],
				Quantity: item.Quantity,
			}
			byKey[key] = group
			order = append(order, key)
		}
		group.Items = append(group.Items, item)
		group.MemberIDs = append(group.MemberIDs, item.MemberID)
		group.AddressIDs = append(group.AddressIDs, item.AddressID)
	}

	groups := make([]CartGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, *byKey[key])
	}
	return groups
}

// loadProducts fetches the products referenced by cart rows in one
// query. Soft-deleted products are simply absent from the map.
func loadProducts(db *gorm.DB, items []models.CartItem) (map[uint]*models.Product, error) {
	ids := make([]uint, 0, len(items))
	seen := make(map[uint]bool)
	for _, item := range items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}
	products := make(map[uint]*models.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	var rows []models.Product
	if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		products[rows[i].ID] = &rows[i]
	}
	return products, nil
}
