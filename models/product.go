package models

import (
	"time"

	"gorm.io/gorm"
)

type PlanType string

const (
	PlanSingle PlanType = "single"
	PlanCouple PlanType = "couple"
	PlanFamily PlanType = "family"
)

// MemberRange returns the allowed member count for a plan type.
// Family plans carry 3 mandatory members plus 1 optional.
func (p PlanType) MemberRange() (min int, max int) {
	switch p {
	case PlanCouple:
		return 2, 2
	case PlanFamily:
		return 3, 4
	default:
		return 1, 1
	}
}

func (p PlanType) Valid() bool {
	return p == PlanSingle || p == PlanCouple || p == PlanFamily
}

type Product struct {
	ID               uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string         `gorm:"size:200;not null" json:"name"`
	Price            float64        `gorm:"not null" json:"price"`         // MRP
	SpecialPrice     float64        `gorm:"not null" json:"special_price"` // Sale price, product discount already netted out
	ShortDescription string         `gorm:"size:500" json:"short_description"`
	Discount         string         `gorm:"size:50" json:"discount"`
	Description      string         `gorm:"size:2000" json:"description"`
	Images           []string       `gorm:"serializer:json" json:"images"`
	PlanType         PlanType       `gorm:"type:VARCHAR(20);default:'single';index" json:"plan_type"`
	MaxMembers       int            `gorm:"default:1" json:"max_members"`
	CategoryID       uint           `gorm:"index" json:"category_id"`
	Category         Category       `gorm:"foreignKey:CategoryID" json:"category"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
