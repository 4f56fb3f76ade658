package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem carries its own price snapshot, copied from the cart at
// order creation and independent of later cart or product changes.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"order_id"`
	Order   Order `json:"-"`

	ProductID uint    `json:"product_id"`
	Product   Product `json:"product"`

	Quantity int             `gorm:"not null" json:"quantity"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}
