package services

import (
	"testing"

	"github.com/SpideeCode/uberPharma/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddKeepsOneCartPerUserAndPharmacy(t *testing.T) {
	env := setup(t)
	owner := createUser(t, env.db, entity.RolePharmacy, "owner@test.dev")
	client := createUser(t, env.db, entity.RoleClient, "client@test.dev")
	ph1 := createPharmacy(t, env.db, owner.ID, "Pharma One")
	ph2 := createPharmacy(t, env.db, owner.ID, "Pharma Two")
	p1 := createProduct(t, env.db, ph1.ID, "Aspirin", "4.50", 10)
	p2 := createProduct(t, env.db, ph1.ID, "Vitamin C", "2.00", 10)
	p3 := createProduct(t, env.db, ph2.ID, "Bandages", "1.50", 10)

	for _, in := range []*AddToCartIn{
		{ProductID: p1.ID, Quantity: 1, PharmacyID: ph1.ID},
		{ProductID: p2.ID, Quantity: 1, PharmacyID: ph1.ID},
		{ProductID: p3.ID, Quantity: 1, PharmacyID: ph2.ID},
	} {
		_, err := env.carts.Add(principal(client), in)
		require.NoError(t, err)
	}

	var count int64
	require.NoError(t, env.db.Model(&entity.Cart{}).Where("user_id = ?", client.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count, "one cart per pharmacy")

	require.NoError(t, env.db.Model(&entity.Cart{}).
		Where("user_id = ? AND pharmacy_id = ?", client.ID, ph1.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRepeatedAddIncrementsQuantity(t *testing.T) {
	env := setup(t)
	owner := createUser(t, env.db, entity.RolePharmacy, "owner@test.dev")
	client := createUser(t, env.db, entity.RoleClient, "client@test.dev")
	ph := createPharmacy(t, env.db, owner.ID, "Pharma")
	product := createProduct(t, env.db, ph.ID, "Aspirin", "4.50", 10)

	_, err := env.carts.Add(principal(client), &AddToCartIn{ProductID: product.ID, Quantity: 2, PharmacyID: ph.ID})
	require.NoError(t, err)
	item, err := env.carts.Add(principal(client), &AddToCartIn{ProductID: product.ID, Quantity: 3, PharmacyID: ph.ID})
	require.NoError(t, err)

	assert.Equal(t, 5, item.Quantity)

	var count int64
	require.NoError(t, env.db.Model(&entity.CartItem{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "no duplicate line for the same product")
}

func TestAddResnapshotsCurrentPrice(t *testing.T) {
	env := setup(t)
	owner := createUser(t, env.db, entity.RolePharmacy, "owner@test.dev")
	client := createUser(t, env.db, entity.RoleClient, "client@test.dev")
	ph := createPharmacy(t, env.db, owner.ID, "Pharma")
	product := createProduct(t, env.db, ph.ID, "Aspirin", "5.00", 10)

	_, err := env.carts.Add(principal(client), &AddToCartIn{ProductID: product.ID, Quantity: 1, PharmacyID: ph.ID})
	require.NoError(t, err)

	require.NoError(t, env.db.Model(&entity.Product{}).Where("id = ?", product.ID).
		Update("price", decimal.RequireFromString("6.00")).Error)

	item, err := env.carts.Add(principal(client), &AddToCartIn{ProductID: product.ID, Quantity: 1, PharmacyID: ph.ID})
	require.NoError(t, err)

	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.PriceAtAddition.Equal(decimal.RequireFromString("6.00")),
		"every add rewrites the snapshot, got %s", item.PriceAtAddition)
}

func TestSnapshotSurvivesLaterPriceChange(t *testing.T) {
	env := setup(t)
	owner := createUser(t, env.db, entity.RolePharmacy, "owner@test.dev")
	client := createUser(t, env.db, entity.RoleClient, "client@test.dev")
	ph := createPharmacy(t, env.db, owner.ID, "Pharma")
	product := createProduct(t, env.db, ph.ID, "Aspirin", "9.99", 10)

	_, err := env.carts.Add(principal(client), &AddToCartIn{ProductID: product.ID, Quantity: 3, PharmacyID: ph.ID})
	require.NoError(t, err)

	require.NoError(t, env.db.Model(&entity.Product{}).Where("id = ?", product.ID).
		Update("price", decimal.RequireFromString("19.99")).Error)

	carts, err := env.carts.ListForUser(principal(client))
	require.NoError(t, err)
	require.Len(t, carts, 1)
	require.Len(t, carts[0].Items, 1)

	item := carts[0].Items[0]
	assert.True(t, item.PriceAtAddition.Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, 3, item.Quantity)
	assert.True(t, carts[0].TotalPrice.Equal(decimal.RequireFromString("29.97")),
		"total computed from the snapshot, got %s", carts[0].TotalPrice)
}

func TestAddValidation(t *testing.T) {
	env := setup(t)
	owner := createUser(t, env.db, entity.RolePharmacy, "owner@test.dev")
	client := createUser(t, env.db, entity.RoleClient, "client@test.dev")
	ph := createPharmacy(t, env.db, owner.ID, "Pharma")
	product := createProduct(t, env.db, ph.ID, "Aspirin", "5.00", 10)

	_, err := env.carts.Add(principal(client), &AddToCartIn{ProductID: product.ID, Quantity: 0, PharmacyID: ph.ID})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = env.carts.Add(principal(client), &AddToCartIn{ProductID: 9999, Quantity: 1, PharmacyID: ph.ID})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.carts.Add(principal(client), &AddToCartIn{ProductID: product.ID, Quantity: 1, PharmacyID: 9999})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveItemEnforcesOwnership(t *testing.T) {
	env := setup(t)
	owner := createUser(t, env.db, entity.RolePharmacy, "owner@test.dev")
	client := createUser(t, env.db, entity.RoleClient, "client@test.dev")
	stranger := createUser(t, env.db, entity.RoleClient, "stranger@test.dev")
	ph := createPharmacy(t, env.db, owner.ID, "Pharma")
	product := createProduct(t, env.db, ph.ID, "Aspirin", "5.00", 10)

	item, err := env.carts.Add(principal(client), &AddToCartIn{ProductID: product.ID, Quantity: 1, PharmacyID: ph.ID})
	require.NoError(t, err)

	assert.ErrorIs(t, env.carts.RemoveItem(principal(stranger), item.ID), ErrForbidden)
	require.NoError(t, env.carts.RemoveItem(principal(client), item.ID))
	assert.ErrorIs(t, env.carts.RemoveItem(principal(client), item.ID), ErrNotFound)
}

func TestClearKeepsCartRow(t *testing.T) {
	env := setup(t)
	owner := createUser(t, env.db, entity.RolePharmacy, "owner@test.dev")
	client := createUser(t, env.db, entity.RoleClient, "client@test.dev")
	ph := createPharmacy(t, env.db, owner.ID, "Pharma")
	cart := fillCart(t, env, client, ph)

	stranger := createUser(t, env.db, entity.RoleClient, "stranger@test.dev")
	assert.ErrorIs(t, env.carts.Clear(principal(stranger), cart.ID), ErrForbidden)

	require.NoError(t, env.carts.Clear(principal(client), cart.ID))

	var items int64
	require.NoError(t, env.db.Model(&entity.CartItem{}).Where("cart_id = ?", cart.ID).Count(&items).Error)
	assert.EqualValues(t, 0, items)

	var still entity.Cart
	assert.NoError(t, env.db.First(&still, cart.ID).Error, "cart row survives a clear")
}
