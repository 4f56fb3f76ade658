package entity

import (
	"gorm.io/gorm"
)

type Pharmacy struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	IsOpen  bool   `gorm:"not null;default:true" json:"is_open"`

	UserID uint `json:"user_id"` // owner (users.id)
	User   User `json:"-"`

	Products []Product `json:"products,omitempty"`
	Orders   []Order   `json:"-"`
}
