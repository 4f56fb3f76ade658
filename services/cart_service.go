package services

import (
	"errors"

	"github.com/SpideeCode/uberPharma/entity"
	"github.com/SpideeCode/uberPharma/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService struct {
	DB           *gorm.DB
	CartRepo     *repository.CartRepository
	ProductRepo  *repository.ProductRepository
	PharmacyRepo *repository.PharmacyRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, pr *repository.ProductRepository, phr *repository.PharmacyRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, ProductRepo: pr, PharmacyRepo: phr}
}

type AddToCartIn struct {
	ProductID  uint `json:"product_id" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
	PharmacyID uint `json:"pharmacy_id" binding:"required"`
}

// CartView is a cart with its total computed on read.
type CartView struct {
	entity.Cart
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Add puts a product in the principal's cart for the pharmacy. The
// cart and the line are created lazily; an existing line gets its
// quantity incremented, and the snapshot price is re-taken from the
// product's current price on every call. No stock check happens here.
func (s *CartService) Add(p entity.Principal, in *AddToCartIn) (*entity.CartItem, error) {
	if in.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	ok, err := s.PharmacyRepo.Exists(in.PharmacyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	product, err := s.ProductRepo.FindByID(in.ProductID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var item *entity.CartItem
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.CartRepo.GetOrCreateCart(tx, p.UserID, in.PharmacyID)
		if err != nil {
			return err
		}
		item, err = s.CartRepo.UpsertItem(tx, cart.ID, product.ID, in.Quantity, product.Price)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes one line. The line's cart must belong to the
// principal; admins may remove anything.
func (s *CartService) RemoveItem(p entity.Principal, itemID uint) error {
	item, err := s.CartRepo.GetItemWithCart(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if item.Cart.UserID != p.UserID && p.Role != entity.RoleAdmin {
		return ErrForbidden
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.DeleteItem(tx, item.ID)
	})
}

// Clear empties the cart but keeps the cart row for reuse.
func (s *CartService) Clear(p entity.Principal, cartID uint) error {
	cart, err := s.CartRepo.GetCart(cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if cart.UserID != p.UserID && p.Role != entity.RoleAdmin {
		return ErrForbidden
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		_, err := s.CartRepo.ClearItems(tx, cart.ID)
		return err
	})
}

// ListForUser returns every cart of the principal with items, products,
// pharmacy and the computed total.
func (s *CartService) ListForUser(p entity.Principal) ([]CartView, error) {
	carts, err := s.CartRepo.ListForUser(p.UserID)
	if err != nil {
		return nil, err
	}
	views := make([]CartView, 0, len(carts))
	for _, c := range carts {
		views = append(views, CartView{Cart: c, TotalPrice: c.Total()})
	}
	return views, nil
}

// ViewForPharmacy returns the principal's cart for one pharmacy, or
// nil when none exists. Used by the catalog detail page.
func (s *CartService) ViewForPharmacy(p entity.Principal, pharmacyID uint) (*CartView, error) {
	cart, err := s.CartRepo.GetCartWithItems(p.UserID, pharmacyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &CartView{Cart: *cart, TotalPrice: cart.Total()}, nil
}
