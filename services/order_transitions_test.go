package services

import (
	"testing"

	"github.com/SpideeCode/uberPharma/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrder(t *testing.T, env *testEnv, client, owner entity.User) *entity.Order {
	t.Helper()
	ph := createPharmacy(t, env.db, owner.ID, "Pharma")
	cart := fillCart(t, env, client, ph)
	order, err := env.orders.Checkout(principal(client), &CheckoutIn{CartID: cart.ID})
	require.NoError(t, err)
	return order
}

func TestUpdateStatusFollowsLifecycle(t *testing.T) {
	env := setup(t)
	owner := createUser(t, env.db, entity.RolePharmacy, "owner@test.dev")
	client := createUser(t, env.db, entity.RoleClient, "client@test.dev")
	order := placeOrder(t, env, client, owner)

	for _, next := range []entity.OrderStatus{
		entity.StatusAccepted,
		entity.StatusInDelivery,
		entity.StatusDelivered,
	} {
		updated, err := env.orders.UpdateStatus(principal(owner), order.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, updated.Status)
	}
}

func TestUpdateStatusRejectsSkippedStep(t *testing.T) {
	env := setup(t)
	owner := createUser(t, env.db, entity.RolePharmacy, "owner@test.dev")
	client := createUser(t, env.db, entity.RoleClient, "client@test.dev")
	order := placeOrder(t, env, client, owner)

	_, err := env.orders.UpdateStatus(principal(owner), order.ID, entity.StatusInDelivery)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	var reloaded entity.Order
	require.NoError(t, env.db.First(&reloaded, order.ID).Error)
	assert.Equal(t, entity.StatusPending, reloaded.Status, "rejected transition leaves the order untouched")
}

func TestUpdateStatusTerminalStates(t *testing.T) {
	env := setup(t)
	owner := createUser(t, env.db, entity.RolePharmacy, "owner@test.dev")
	client := createUser(t, env.db, entity.RoleClient, "client@test.dev")

	order := placeOrder(t, env, client, owner)
	for _, next := range []entity.OrderStatus{entity.StatusAccepted, entity.StatusInDelivery, entity.StatusDelivered} {
		_, err := env.orders.UpdateStatus(principal(owner), order.ID, next)
		require.NoError(t, err)
	}
	_, err := env.orders.UpdateStatus(principal(owner), order.ID, entity.StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition, "delivered is terminal")

	cancelled := placeOrder(t, env, client, owner)
	_, err = env.orders.UpdateStatus(principal(owner), cancelled.ID, entity.StatusCancelled)
	require.NoError(t, err)
	_, err = env.orders.UpdateStatus(principal(owner), cancelled.ID, entity.StatusAccepted)
	assert.ErrorIs(t, err, ErrInvalidTransition, "cancelled is terminal")
}

func TestUpdateStatusCancellableEarlyOnly(t *testing.T) {
	env := setup(t)
	owner := createUser(t, env.db, entity.RolePharmacy, "owner@test.dev")
	client := createUser(t, env.db, entity.RoleClient, "client@test.dev")
	order := placeOrder(t, env, client, owner)

	_, err := env.orders.UpdateStatus(principal(owner), order.ID, entity.StatusAccepted)
	require.NoError(t, err)
	_, err = env.orders.UpdateStatus(principal(owner), order.ID, entity.StatusInDelivery)
	require.NoError(t, err)

	_, err = env.orders.UpdateStatus(principal(owner), order.ID, entity.StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition, "no cancellation once in delivery")
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	env := setup(t)
	owner := createUser(t, env.db, entity.RolePharmacy, "owner@test.dev")
	client := createUser(t, env.db, entity.RoleClient, "client@test.dev")
	order := placeOrder(t, env, client, owner)

	_, err := env.orders.UpdateStatus(principal(owner), order.ID, entity.OrderStatus("shipped"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatusAuthorization(t *testing.T) {
	env := setup(t)
	owner := createUser(t, env.db, entity.RolePharmacy, "owner@test.dev")
	other := createUser(t, env.db, entity.RolePharmacy, "other@test.dev")
	admin := createUser(t, env.db, entity.RoleAdmin, "admin@test.dev")
	client := createUser(t, env.db, entity.RoleClient, "client@test.dev")
	order := placeOrder(t, env, client, owner)

	_, err := env.orders.UpdateStatus(principal(other), order.ID, entity.StatusAccepted)
	assert.ErrorIs(t, err, ErrForbidden)

	var reloaded entity.Order
	require.NoError(t, env.db.First(&reloaded, order.ID).Error)
	assert.Equal(t, entity.StatusPending, reloaded.Status)

	updated, err := env.orders.UpdateStatus(principal(admin), order.ID, entity.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, updated.Status)

	_, err = env.orders.UpdateStatus(principal(owner), 9999, entity.StatusAccepted)
	assert.ErrorIs(t, err, ErrNotFound)
}
