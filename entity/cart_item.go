package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is one product line in a cart. The composite unique index
// keeps one line per product per cart; repeated adds increment the
// quantity instead of duplicating the row.
type CartItem struct {
	gorm.Model
	CartID uint `gorm:"uniqueIndex:idx_cart_items_cart_product;not null" json:"cart_id"`
	Cart   Cart `json:"-"`

	ProductID uint    `gorm:"uniqueIndex:idx_cart_items_cart_product;not null" json:"product_id"`
	Product   Product `json:"product"`

	Quantity int `gorm:"not null;default:1" json:"quantity"`

	// PriceAtAddition snapshots the product price at add time. It is
	// rewritten on every add call but never re-synced with later
	// product price changes.
	PriceAtAddition decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_at_addition"`
}

func (ci *CartItem) LineTotal() decimal.Decimal {
	return ci.PriceAtAddition.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
