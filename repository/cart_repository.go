package repository

import (
	"errors"

	"github.com/SpideeCode/uberPharma/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetOrCreateCart returns the user's cart for the pharmacy, creating
// it lazily on first use.
func (r *CartRepository) GetOrCreateCart(tx *gorm.DB, userID, pharmacyID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ? AND pharmacy_id = ?", userID, pharmacyID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID, PharmacyID: pharmacyID}
		if err := tx.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertItem merges a line into the cart: an existing line for the
// product gets its quantity incremented, and the snapshot price is
// rewritten with the product's current price on every add.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID, productID uint, qty int, price decimal.Decimal) (*entity.CartItem, error) {
	var item entity.CartItem
	err := tx.Where("cart_id = ? AND product_id = ?", cartID, productID).First(&item).Error
	switch {
	case err == nil:
		item.Quantity += qty
		item.PriceAtAddition = price
		return &item, tx.Save(&item).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		item = entity.CartItem{CartID: cartID, ProductID: productID, Quantity: qty, PriceAtAddition: price}
		return &item, tx.Create(&item).Error
	default:
		return nil, err
	}
}

func (r *CartRepository) GetCart(id uint) (*entity.Cart, error) {
	var c entity.Cart
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) GetCartWithItems(userID, pharmacyID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ? AND pharmacy_id = ?", userID, pharmacyID).
		Preload("Items").
		Preload("Items.Product").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetItemWithCart loads a cart item together with its cart so the
// service can verify ownership.
func (r *CartRepository) GetItemWithCart(itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	if err := r.DB.Preload("Cart").First(&item, itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) DeleteItem(tx *gorm.DB, itemID uint) error {
	return tx.Delete(&entity.CartItem{}, itemID).Error
}

// Items reads the cart's lines through tx. Checkout calls it inside
// its transaction so the empty-cart precondition is re-checked there.
func (r *CartRepository) Items(tx *gorm.DB, cartID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("cart_id = ?", cartID).Find(&items).Error
	return items, err
}

// ClearItems deletes every line of the cart and reports how many rows
// went away. The cart row itself survives, empty and reusable.
func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) (int64, error) {
	res := tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) ListForUser(userID uint) ([]entity.Cart, error) {
	var carts []entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		Preload("Pharmacy").
		Find(&carts).Error
	return carts, err
}
