package models

import "time"

// Audit actions and entity types written by the cart handlers.
const (
	AuditActionAdd    = "ADD"
	AuditActionUpdate = "UPDATE"
	AuditActionDelete = "DELETE"
	AuditActionClear  = "CLEAR"
	AuditActionView   = "VIEW"
	AuditActionApply  = "APPLY_COUPON"
	AuditActionRemove = "REMOVE_COUPON"

	AuditEntityCart     = "CART"
	AuditEntityCartItem = "CART_ITEM"
	AuditEntityCoupon   = "COUPON"
)

type AuditLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"index" json:"user_id"`
	Username   string         `gorm:"size:255" json:"username"`
	CartID     uint           `json:"cart_id"`
	Action     string         `gorm:"size:100;not null" json:"action"`
	EntityType string         `gorm:"size:50;not null" json:"entity_type"`
	EntityID   uint           `json:"entity_id"`
	Details    map[string]any `gorm:"serializer:json" json:"details"`
	IPAddress  string         `gorm:"size:50;index" json:"ip_address"`
	UserAgent  string         `gorm:"size:500" json:"user_agent"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
}
