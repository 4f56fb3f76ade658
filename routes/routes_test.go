package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SpideeCode/uberPharma/configs"
	"github.com/SpideeCode/uberPharma/entity"
	"github.com/SpideeCode/uberPharma/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	r := gin.New()
	RegisterRoutes(r, db, &configs.Config{JWTSecret: testSecret, JWTTTL: time.Hour})
	return r, db
}

func token(t *testing.T, u entity.User) string {
	t.Helper()
	tok, err := utils.GenerateToken(u.ID, string(u.Role), testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func do(r *gin.Engine, method, path, bearer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedOrder(t *testing.T, db *gorm.DB) (owner, other, client entity.User, order entity.Order) {
	t.Helper()
	owner = entity.User{Name: "Owner", Email: "owner@test.dev", Password: "x", Role: entity.RolePharmacy}
	other = entity.User{Name: "Other", Email: "other@test.dev", Password: "x", Role: entity.RolePharmacy}
	client = entity.User{Name: "Client", Email: "client@test.dev", Password: "x", Role: entity.RoleClient}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, db.Create(&client).Error)

	ph := entity.Pharmacy{Name: "Pharma", Address: "1 rue Test", IsOpen: true, UserID: owner.ID}
	require.NoError(t, db.Create(&ph).Error)

	order = entity.Order{
		Reference:       "ref-1",
		ClientID:        client.ID,
		PharmacyID:      ph.ID,
		Status:          entity.StatusPending,
		PaymentStatus:   entity.PaymentPaid,
		TotalPrice:      decimal.RequireFromString("13.00"),
		DeliveryAddress: "Adresse du client",
	}
	require.NoError(t, db.Create(&order).Error)
	return owner, other, client, order
}

func TestUpdateStatusEndpoint(t *testing.T) {
	r, db := newRouter(t)
	owner, _, _, order := seedOrder(t, db)

	w := do(r, http.MethodPatch, "/api/orders/1/status", token(t, owner), `{"status":"accepted"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Order   struct {
			Status string `json:"status"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "order status updated", body.Message)
	assert.Equal(t, "accepted", body.Order.Status)

	var reloaded entity.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, entity.StatusAccepted, reloaded.Status)
}

func TestUpdateStatusEndpointRejectsSkip(t *testing.T) {
	r, db := newRouter(t)
	owner, _, _, order := seedOrder(t, db)

	w := do(r, http.MethodPatch, "/api/orders/1/status", token(t, owner), `{"status":"delivered"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)

	var reloaded entity.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Equal(t, entity.StatusPending, reloaded.Status)
}

func TestPharmacyDetailRequiresClientTier(t *testing.T) {
	r, db := newRouter(t)
	owner, _, client, _ := seedOrder(t, db)

	w := do(r, http.MethodGet, "/pharmacies/1", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "detail page needs a token")

	w = do(r, http.MethodGet, "/pharmacies", "", "")
	assert.Equal(t, http.StatusOK, w.Code, "listing stays public")

	w = do(r, http.MethodGet, "/pharmacies/1", token(t, client), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/pharmacies/1", token(t, owner), "")
	assert.Equal(t, http.StatusOK, w.Code, "higher tiers pass the client gate")
}

func TestUpdateStatusEndpointAuth(t *testing.T) {
	r, db := newRouter(t)
	_, other, client, _ := seedOrder(t, db)

	w := do(r, http.MethodPatch, "/api/orders/1/status", "", `{"status":"accepted"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "no token")

	w = do(r, http.MethodPatch, "/api/orders/1/status", token(t, client), `{"status":"accepted"}`)
	assert.Equal(t, http.StatusForbidden, w.Code, "client tier cannot reach the route")

	w = do(r, http.MethodPatch, "/api/orders/1/status", token(t, other), `{"status":"accepted"}`)
	assert.Equal(t, http.StatusForbidden, w.Code, "pharmacy user without ownership")

	w = do(r, http.MethodPatch, "/api/orders/999/status", token(t, other), `{"status":"accepted"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
