package repository

import (
	"github.com/SpideeCode/uberPharma/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderLoaded returns the order with items, products, pharmacy and
// client populated, the shape every read endpoint responds with.
func (r *OrderRepository) GetOrderLoaded(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.Product").
		Preload("Pharmacy").
		Preload("Client").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard performs the transition as a compare-and-swap:
// zero rows affected means the order moved concurrently.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) ListForClient(clientID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("client_id = ?", clientID).
		Preload("Items").
		Preload("Items.Product").
		Preload("Pharmacy").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListForPharmacies(pharmacyIDs []uint) ([]entity.Order, error) {
	if len(pharmacyIDs) == 0 {
		return nil, nil
	}
	var orders []entity.Order
	err := r.DB.Where("pharmacy_id IN ?", pharmacyIDs).
		Preload("Items").
		Preload("Items.Product").
		Preload("Client").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items").
		Preload("Items.Product").
		Preload("Pharmacy").
		Preload("Client").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

// OrdersOverview returns the light rows the dashboards aggregate in
// memory (status counts, revenue). Empty pharmacyIDs means all orders.
func (r *OrderRepository) OrdersOverview(pharmacyIDs []uint) ([]entity.Order, error) {
	var orders []entity.Order
	q := r.DB.Model(&entity.Order{}).Select("id, pharmacy_id, status, total_price, created_at")
	if len(pharmacyIDs) > 0 {
		q = q.Where("pharmacy_id IN ?", pharmacyIDs)
	}
	err := q.Find(&orders).Error
	return orders, err
}

// ItemsForOrders returns the items of the given orders with products
// loaded, for the top-product rankings.
func (r *OrderRepository) ItemsForOrders(orderIDs []uint) ([]entity.OrderItem, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	var items []entity.OrderItem
	err := r.DB.Preload("Product").Where("order_id IN ?", orderIDs).Find(&items).Error
	return items, err
}

func (r *OrderRepository) RecentOrders(pharmacyIDs []uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 5
	}
	q := r.DB.
		Preload("Client").
		Preload("Pharmacy").
		Preload("Items").
		Order("created_at DESC").
		Limit(limit)
	if len(pharmacyIDs) > 0 {
		q = q.Where("pharmacy_id IN ?", pharmacyIDs)
	}
	var orders []entity.Order
	err := q.Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) Count() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Count(&n).Error
	return n, err
}
