package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart is a per-(user, pharmacy) staging area, created lazily on the
// first add. The composite unique index guarantees at most one cart
// per user per pharmacy.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_carts_user_pharmacy;not null" json:"user_id"`
	User   User `json:"-"`

	PharmacyID uint     `gorm:"uniqueIndex:idx_carts_user_pharmacy;not null" json:"pharmacy_id"`
	Pharmacy   Pharmacy `json:"pharmacy"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Total sums the snapshot prices of the loaded items. Computed on
// read, never stored.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}
