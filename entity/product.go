package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Name     string          `gorm:"not null" json:"name"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock    int             `gorm:"not null" json:"stock"`
	Image    string          `json:"image"`
	Category string          `json:"category"`

	PharmacyID uint     `json:"pharmacy_id"`
	Pharmacy   Pharmacy `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
