package services

import (
	"path/filepath"
	"testing"

	"github.com/SpideeCode/uberPharma/entity"
	"github.com/SpideeCode/uberPharma/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	db     *gorm.DB
	carts  *CartService
	orders *OrderService
	dash   *DashboardService
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Pharmacy{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	))

	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	pharmacyRepo := repository.NewPharmacyRepository(db)
	productRepo := repository.NewProductRepository(db)
	userRepo := repository.NewUserRepository(db)

	return &testEnv{
		db:     db,
		carts:  NewCartService(db, cartRepo, productRepo, pharmacyRepo),
		orders: NewOrderService(db, orderRepo, cartRepo, pharmacyRepo),
		dash:   NewDashboardService(orderRepo, pharmacyRepo, productRepo, userRepo),
	}
}

func createUser(t *testing.T, db *gorm.DB, role entity.Role, email string) entity.User {
	t.Helper()
	u := entity.User{Name: "Test " + string(role), Email: email, Password: "x", Role: role}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func createPharmacy(t *testing.T, db *gorm.DB, ownerID uint, name string) entity.Pharmacy {
	t.Helper()
	p := entity.Pharmacy{Name: name, Address: "1 rue Test", Phone: "000", IsOpen: true, UserID: ownerID}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func createProduct(t *testing.T, db *gorm.DB, pharmacyID uint, name, price string, stock int) entity.Product {
	t.Helper()
	p := entity.Product{Name: name, Price: decimal.RequireFromString(price), Stock: stock, PharmacyID: pharmacyID}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func principal(u entity.User) entity.Principal {
	return entity.Principal{UserID: u.ID, Role: u.Role}
}

// fillCart seeds a cart with two lines: 5.00 x2 and 3.00 x1.
func fillCart(t *testing.T, env *testEnv, client entity.User, pharmacy entity.Pharmacy) *entity.Cart {
	t.Helper()
	p1 := createProduct(t, env.db, pharmacy.ID, "Paracetamol", "5.00", 20)
	p2 := createProduct(t, env.db, pharmacy.ID, "Ibuprofen", "3.00", 20)

	_, err := env.carts.Add(principal(client), &AddToCartIn{ProductID: p1.ID, Quantity: 2, PharmacyID: pharmacy.ID})
	require.NoError(t, err)
	_, err = env.carts.Add(principal(client), &AddToCartIn{ProductID: p2.ID, Quantity: 1, PharmacyID: pharmacy.ID})
	require.NoError(t, err)

	var cart entity.Cart
	require.NoError(t, env.db.Where("user_id = ? AND pharmacy_id = ?", client.ID, pharmacy.ID).First(&cart).Error)
	return &cart
}
