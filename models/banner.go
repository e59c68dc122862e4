package models

import "time"

type Banner struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:200" json:"title"`
	ImageURL     string    `gorm:"size:500;not null" json:"image_url"`
	IsActive     bool      `gorm:"default:true;index" json:"is_active"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
