package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is the immutable result of a checkout. After creation only
// Status changes, through the guarded transitions.
type Order struct {
	gorm.Model
	Reference string `gorm:"uniqueIndex;not null" json:"reference"`

	ClientID uint `json:"client_id"`
	Client   User `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	PharmacyID uint     `json:"pharmacy_id"`
	Pharmacy   Pharmacy `json:"pharmacy"`

	CourierID *uint `json:"courier_id"`

	Status        OrderStatus `gorm:"not null;default:pending" json:"status"`
	PaymentStatus string      `gorm:"not null;default:paid" json:"payment_status"`

	// TotalPrice is frozen at checkout time from the cart snapshots.
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`

	DeliveryAddress   string  `json:"delivery_address"`
	DeliveryLatitude  float64 `json:"delivery_latitude"`
	DeliveryLongitude float64 `json:"delivery_longitude"`

	Items []OrderItem `json:"items"`
}
