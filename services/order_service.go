package services

import (
	"errors"

	"github.com/SpideeCode/uberPharma/entity"
	"github.com/SpideeCode/uberPharma/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EstimatedDeliveryMinutes is the fixed estimate shown on the
// confirmation page. There is no real courier integration.
const EstimatedDeliveryMinutes = 30

const defaultDeliveryAddress = "Adresse du client"

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	CartRepo     *repository.CartRepository
	PharmacyRepo *repository.PharmacyRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, cartRepo *repository.CartRepository, pharmacyRepo *repository.PharmacyRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, PharmacyRepo: pharmacyRepo}
}

type CheckoutIn struct {
	CartID            uint    `json:"cart_id" binding:"required"`
	DeliveryAddress   string  `json:"delivery_address"`
	DeliveryLatitude  float64 `json:"delivery_latitude"`
	DeliveryLongitude float64 `json:"delivery_longitude"`
}

// Checkout converts the cart into an order in one transaction: the
// total is summed from the cart's price snapshots, order items copy
// those snapshots, and the cart is emptied. Payment is simulated and
// always succeeds. The empty-cart check runs inside the transaction,
// so a concurrent second checkout of the same cart fails instead of
// double-creating.
func (s *OrderService) Checkout(p entity.Principal, in *CheckoutIn) (*entity.Order, error) {
	cart, err := s.CartRepo.GetCart(in.CartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if cart.UserID != p.UserID {
		return nil, ErrForbidden
	}

	address := in.DeliveryAddress
	if address == "" {
		address = defaultDeliveryAddress
	}

	var orderID uint
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		items, err := s.CartRepo.Items(tx, cart.ID)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		total := decimal.Zero
		for _, it := range items {
			total = total.Add(it.LineTotal())
		}

		order := entity.Order{
			Reference:         uuid.NewString(),
			ClientID:          p.UserID,
			PharmacyID:        cart.PharmacyID,
			CourierID:         nil,
			Status:            entity.StatusPending,
			PaymentStatus:     entity.PaymentPaid,
			TotalPrice:        total,
			DeliveryAddress:   address,
			DeliveryLatitude:  in.DeliveryLatitude,
			DeliveryLongitude: in.DeliveryLongitude,
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range items {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				Price:     it.PriceAtAddition,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}

		// CAS-style guard: if another checkout raced us here, the
		// deleted row count will not match and we roll back.
		deleted, err := s.CartRepo.ClearItems(tx, cart.ID)
		if err != nil {
			return err
		}
		if deleted != int64(len(items)) {
			return ErrEmptyCart
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Repo.GetOrderLoaded(orderID)
}

// ListFor returns the orders the principal may see: clients their own,
// pharmacy users those of their pharmacies, admins everything.
func (s *OrderService) ListFor(p entity.Principal) ([]entity.Order, error) {
	switch p.Role {
	case entity.RoleAdmin:
		return s.Repo.ListAll()
	case entity.RolePharmacy:
		pharmacies, err := s.PharmacyRepo.ListByOwner(p.UserID)
		if err != nil {
			return nil, err
		}
		ids := make([]uint, 0, len(pharmacies))
		for _, ph := range pharmacies {
			ids = append(ids, ph.ID)
		}
		return s.Repo.ListForPharmacies(ids)
	default:
		return s.Repo.ListForClient(p.UserID)
	}
}

// Detail loads one order and enforces the read rules: the client who
// placed it, the owner of its pharmacy, or an admin.
func (s *OrderService) Detail(p entity.Principal, orderID uint) (*entity.Order, error) {
	order, err := s.Repo.GetOrderLoaded(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.authorizeRead(p, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) authorizeRead(p entity.Principal, order *entity.Order) error {
	if p.Role == entity.RoleAdmin || order.ClientID == p.UserID {
		return nil
	}
	if p.Role == entity.RolePharmacy {
		owned, err := s.PharmacyRepo.IsOwnedBy(order.PharmacyID, p.UserID)
		if err != nil {
			return err
		}
		if owned {
			return nil
		}
	}
	return ErrForbidden
}
