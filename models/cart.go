package models

import "time"

type Cart struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index" json:"user_id"`
	IsActive       bool      `gorm:"default:true;index" json:"is_active"`
	LastActivityAt time.Time `json:"last_activity_at"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CartItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"index" json:"user_id"`
	CartID    uint `gorm:"index" json:"cart_id"`
	ProductID uint `gorm:"index" json:"product_id"`
	MemberID  uint `gorm:"index" json:"member_id"`
	AddressID uint `json:"address_id"`
	Quantity  int  `gorm:"default:1" json:"quantity"`

	// All rows created for one couple/family purchase share the same
	// group_id and must keep identical quantity and product_id.
	GroupID string `gorm:"size:100;index" json:"group_id"`

	// Rows are never physically removed; history backs the audit trail.
	IsDeleted bool `gorm:"default:false;index" json:"is_deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
