package services

import (
	"sort"

	"github.com/SpideeCode/uberPharma/entity"
	"github.com/SpideeCode/uberPharma/repository"
	"github.com/shopspring/decimal"
)

const topLimit = 5

// DashboardService computes the read-side aggregates for the pharmacy
// and admin dashboards. Rows are fetched once and reduced in memory so
// money stays decimal-exact.
type DashboardService struct {
	OrderRepo    *repository.OrderRepository
	PharmacyRepo *repository.PharmacyRepository
	ProductRepo  *repository.ProductRepository
	UserRepo     *repository.UserRepository
}

func NewDashboardService(or *repository.OrderRepository, phr *repository.PharmacyRepository, pr *repository.ProductRepository, ur *repository.UserRepository) *DashboardService {
	return &DashboardService{OrderRepo: or, PharmacyRepo: phr, ProductRepo: pr, UserRepo: ur}
}

type PharmacyOverview struct {
	entity.Pharmacy
	OrdersCount   int                        `json:"orders_count"`
	ProductsCount int                        `json:"products_count"`
	StatusCounts  map[entity.OrderStatus]int `json:"status_counts"`
	Revenue       decimal.Decimal            `json:"revenue"`
}

type PharmacyDashboard struct {
	Pharmacies   []PharmacyOverview         `json:"pharmacies"`
	TotalOrders  int                        `json:"total_orders"`
	TotalRevenue decimal.Decimal            `json:"total_revenue"`
	StatusCounts map[entity.OrderStatus]int `json:"status_counts"`
	RecentOrders []entity.Order             `json:"recent_orders"`
	TopProducts  []TopProduct               `json:"top_products"`
}

// TopProduct ranks a product by how often it sold through delivered
// orders. Sales is the summed quantity, Revenue the summed snapshot
// price times quantity.
type TopProduct struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Sales     int             `json:"sales"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// TopPharmacy ranks a pharmacy by order count across all statuses.
type TopPharmacy struct {
	PharmacyID  uint            `json:"pharmacy_id"`
	Name        string          `json:"name"`
	OrdersCount int             `json:"orders_count"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// ForOwner aggregates the principal's pharmacies: order counts by
// status per pharmacy and overall, with revenue counting delivered
// orders only.
func (s *DashboardService) ForOwner(p entity.Principal) (*PharmacyDashboard, error) {
	pharmacies, err := s.PharmacyRepo.ListByOwner(p.UserID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(pharmacies))
	for _, ph := range pharmacies {
		ids = append(ids, ph.ID)
	}

	orders, err := s.OrderRepo.OrdersOverview(ids)
	if err != nil {
		return nil, err
	}
	products, err := s.ProductRepo.ListForPharmacies(ids)
	if err != nil {
		return nil, err
	}

	byPharmacy := make(map[uint][]entity.Order, len(ids))
	for _, o := range orders {
		byPharmacy[o.PharmacyID] = append(byPharmacy[o.PharmacyID], o)
	}
	productCount := make(map[uint]int, len(ids))
	for _, prod := range products {
		productCount[prod.PharmacyID]++
	}

	dash := &PharmacyDashboard{
		StatusCounts: make(map[entity.OrderStatus]int),
		TotalRevenue: decimal.Zero,
	}
	for _, ph := range pharmacies {
		view := PharmacyOverview{
			Pharmacy:      ph,
			ProductsCount: productCount[ph.ID],
			StatusCounts:  make(map[entity.OrderStatus]int),
			Revenue:       decimal.Zero,
		}
		for _, o := range byPharmacy[ph.ID] {
			view.OrdersCount++
			view.StatusCounts[o.Status]++
			if o.Status == entity.StatusDelivered {
				view.Revenue = view.Revenue.Add(o.TotalPrice)
			}
		}
		dash.TotalOrders += view.OrdersCount
		dash.TotalRevenue = dash.TotalRevenue.Add(view.Revenue)
		for st, n := range view.StatusCounts {
			dash.StatusCounts[st] += n
		}
		dash.Pharmacies = append(dash.Pharmacies, view)
	}

	deliveredIDs := make([]uint, 0, len(orders))
	for _, o := range orders {
		if o.Status == entity.StatusDelivered {
			deliveredIDs = append(deliveredIDs, o.ID)
		}
	}
	if dash.TopProducts, err = s.topProducts(deliveredIDs); err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		recent, err := s.OrderRepo.RecentOrders(ids, topLimit)
		if err != nil {
			return nil, err
		}
		dash.RecentOrders = recent
	}
	return dash, nil
}

// topProducts reduces the items of delivered orders into a per-product
// ranking, most-sold lines first.
func (s *DashboardService) topProducts(deliveredOrderIDs []uint) ([]TopProduct, error) {
	items, err := s.OrderRepo.ItemsForOrders(deliveredOrderIDs)
	if err != nil {
		return nil, err
	}

	byProduct := make(map[uint]*TopProduct)
	lines := make(map[uint]int)
	for _, it := range items {
		tp, ok := byProduct[it.ProductID]
		if !ok {
			tp = &TopProduct{ProductID: it.ProductID, Name: it.Product.Name, Revenue: decimal.Zero}
			byProduct[it.ProductID] = tp
		}
		tp.Sales += it.Quantity
		tp.Revenue = tp.Revenue.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		lines[it.ProductID]++
	}

	top := make([]TopProduct, 0, len(byProduct))
	for _, tp := range byProduct {
		top = append(top, *tp)
	}
	sort.Slice(top, func(i, j int) bool {
		if lines[top[i].ProductID] != lines[top[j].ProductID] {
			return lines[top[i].ProductID] > lines[top[j].ProductID]
		}
		return top[i].ProductID < top[j].ProductID
	})
	if len(top) > topLimit {
		top = top[:topLimit]
	}
	return top, nil
}

type AdminDashboard struct {
	Users struct {
		Total      int64 `json:"total"`
		Clients    int64 `json:"clients"`
		Pharmacies int64 `json:"pharmacies"`
		Admins     int64 `json:"admins"`
	} `json:"users"`
	Pharmacies    int64                      `json:"pharmacies"`
	Products      int64                      `json:"products"`
	OutOfStock    int64                      `json:"out_of_stock"`
	Orders        int64                      `json:"orders"`
	StatusCounts  map[entity.OrderStatus]int `json:"status_counts"`
	Revenue       decimal.Decimal            `json:"revenue"`
	RecentOrders  []entity.Order             `json:"recent_orders"`
	TopPharmacies []TopPharmacy              `json:"top_pharmacies"`
}

// ForAdmin aggregates marketplace-wide counters.
func (s *DashboardService) ForAdmin() (*AdminDashboard, error) {
	dash := &AdminDashboard{
		StatusCounts: make(map[entity.OrderStatus]int),
		Revenue:      decimal.Zero,
	}

	var err error
	if dash.Users.Total, err = s.UserRepo.Count(); err != nil {
		return nil, err
	}
	if dash.Users.Clients, err = s.UserRepo.CountByRole(entity.RoleClient); err != nil {
		return nil, err
	}
	if dash.Users.Pharmacies, err = s.UserRepo.CountByRole(entity.RolePharmacy); err != nil {
		return nil, err
	}
	if dash.Users.Admins, err = s.UserRepo.CountByRole(entity.RoleAdmin); err != nil {
		return nil, err
	}
	if dash.Pharmacies, err = s.PharmacyRepo.Count(); err != nil {
		return nil, err
	}
	if dash.Products, err = s.ProductRepo.Count(); err != nil {
		return nil, err
	}
	if dash.OutOfStock, err = s.ProductRepo.CountOutOfStock(); err != nil {
		return nil, err
	}
	if dash.Orders, err = s.OrderRepo.Count(); err != nil {
		return nil, err
	}

	orders, err := s.OrderRepo.OrdersOverview(nil)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		dash.StatusCounts[o.Status]++
		if o.Status == entity.StatusDelivered {
			dash.Revenue = dash.Revenue.Add(o.TotalPrice)
		}
	}

	if dash.TopPharmacies, err = s.topPharmacies(orders); err != nil {
		return nil, err
	}

	recent, err := s.OrderRepo.RecentOrders(nil, topLimit)
	if err != nil {
		return nil, err
	}
	dash.RecentOrders = recent
	return dash, nil
}

// topPharmacies reduces the overview rows into a per-pharmacy ranking
// by order count, revenue summed over every status.
func (s *DashboardService) topPharmacies(orders []entity.Order) ([]TopPharmacy, error) {
	pharmacies, err := s.PharmacyRepo.FindAll()
	if err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(pharmacies))
	for _, ph := range pharmacies {
		names[ph.ID] = ph.Name
	}

	byPharmacy := make(map[uint]*TopPharmacy)
	for _, o := range orders {
		tp, ok := byPharmacy[o.PharmacyID]
		if !ok {
			tp = &TopPharmacy{PharmacyID: o.PharmacyID, Name: names[o.PharmacyID], Revenue: decimal.Zero}
			byPharmacy[o.PharmacyID] = tp
		}
		tp.OrdersCount++
		tp.Revenue = tp.Revenue.Add(o.TotalPrice)
	}

	top := make([]TopPharmacy, 0, len(byPharmacy))
	for _, tp := range byPharmacy {
		top = append(top, *tp)
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].OrdersCount != top[j].OrdersCount {
			return top[i].OrdersCount > top[j].OrdersCount
		}
		return top[i].PharmacyID < top[j].PharmacyID
	})
	if len(top) > topLimit {
		top = top[:topLimit]
	}
	return top, nil
}
