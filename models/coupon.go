package models

import "time"

type CouponType string
type CouponStatus string

const (
	CouponTypePercentage CouponType = "percentage"
	CouponTypeFixed      CouponType = "fixed"

	CouponStatusActive   CouponStatus = "active"
	CouponStatusInactive CouponStatus = "inactive"
	CouponStatusExpired  CouponStatus = "expired"
)

// CouponConstraintKind tags what a coupon is restricted to. Known kinds
// are enumerated here; free-form config payloads are not supported.
type CouponConstraintKind string

const (
	ConstraintNone     CouponConstraintKind = "none"
	ConstraintPlanType CouponConstraintKind = "plan_type"
)

type Coupon struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CouponCode    string     `gorm:"size:50;uniqueIndex;not null" json:"coupon_code"` // Stored uppercase, matched case-insensitively
	Description   string     `gorm:"size:500" json:"description"`
	DiscountType  CouponType `gorm:"type:VARCHAR(20);default:'percentage';not null" json:"discount_type"`
	DiscountValue float64    `gorm:"not null" json:"discount_value"` // Percentage (0-100) or fixed amount

	MinOrderAmount    float64  `gorm:"default:0;not null" json:"min_order_amount"`
	MaxDiscountAmount *float64 `json:"max_discount_amount"` // Cap for percentage coupons, nil = uncapped

	MaxUses        *int `json:"max_uses"` // nil = unlimited
	MaxUsesPerUser int  `gorm:"default:1;not null" json:"max_uses_per_user"`

	ValidFrom  *time.Time `json:"valid_from"`
	ValidUntil *time.Time `json:"valid_until"`

	Status CouponStatus `gorm:"type:VARCHAR(20);default:'active';index" json:"status"`

	ConstraintKind      CouponConstraintKind `gorm:"type:VARCHAR(20);default:'none'" json:"constraint_kind"`
	ConstraintPlanTypes []string             `gorm:"serializer:json" json:"constraint_plan_types"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartCoupon records a coupon application. The latest row per user is
// the coupon currently on that user's cart; it is the source of truth,
// independent of cart contents.
type CartCoupon struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	CouponID       uint      `gorm:"index;not null" json:"coupon_id"`
	CouponCode     string    `gorm:"size:50;index;not null" json:"coupon_code"`
	DiscountAmount float64   `gorm:"default:0;not null" json:"discount_amount"` // Snapshot at apply time
	AppliedAt      time.Time `gorm:"autoCreateTime" json:"applied_at"`
}
