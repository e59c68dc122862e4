package models

import "time"

// User carries only what the cart core needs; login/session state lives
// in the auth service.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Mobile    string    `gorm:"size:20;uniqueIndex;not null" json:"mobile"`
	Name      string    `gorm:"size:100" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Members   []Member  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"members"`
	Addresses []Address `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses"`
	CreatedAt time.Time `json:"created_at"`
}

// Member is a family profile a genetic test is purchased for.
type Member struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Relation  string    `gorm:"size:50;not null" json:"relation"` // self, spouse, father, ...
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Address struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	FirstName     string    `gorm:"size:100" json:"first_name"`
	LastName      string    `gorm:"size:100" json:"last_name"`
	Email         string    `gorm:"size:255" json:"email"`
	Mobile        string    `gorm:"size:20" json:"mobile"`
	AddressLabel  string    `gorm:"size:50" json:"address_label"`
	StreetAddress string    `gorm:"size:255" json:"street_address"`
	Landmark      string    `gorm:"size:255" json:"landmark"`
	City          string    `gorm:"size:100" json:"city"`
	State         string    `gorm:"size:100" json:"state"`
	PostalCode    string    `gorm:"size:20" json:"postal_code"`
	Country       string    `gorm:"size:100" json:"country"`
	SaveForFuture bool      `gorm:"default:true" json:"save_for_future"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
