package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     Role   `gorm:"not null;default:client" json:"role"`

	// Relations, preloaded only when needed
	Pharmacies []Pharmacy `gorm:"foreignKey:UserID" json:"-"`
	Orders     []Order    `gorm:"foreignKey:ClientID" json:"-"`
	Carts      []Cart     `json:"-"`
}
