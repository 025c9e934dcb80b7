package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddReplacesExistingLine(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "alice")
	pizza := f.menuItem(t, "Pizza", "12.50")

	f.addToCart(t, u.ID, pizza, 2)
	line := f.addToCart(t, u.ID, pizza, 5)
	assert.Equal(t, 5, line.Quantity)
	requireDecimal(t, "62.50", line.Price)
	assert.Equal(t, "Pizza", line.MenuItem.Title)

	lines, err := f.cart.List(u.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	requireDecimal(t, "12.50", lines[0].UnitPrice)
	requireDecimal(t, "62.50", lines[0].Price)
}

func TestCartAddUnknownMenuItem(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "alice")

	_, err := f.cart.Add(u.ID, &AddToCartIn{MenuItemID: 999, Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartAddRejectsBadQuantity(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "alice")
	pizza := f.menuItem(t, "Pizza", "12.50")

	_, err := f.cart.Add(u.ID, &AddToCartIn{MenuItemID: pizza.ID, Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = f.cart.Add(u.ID, &AddToCartIn{MenuItemID: pizza.ID, Quantity: 1000})
	assert.ErrorIs(t, err, ErrAmountOverflow)

	lines, err := f.cart.List(u.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartIsPerUser(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	pizza := f.menuItem(t, "Pizza", "12.50")

	f.addToCart(t, alice.ID, pizza, 1)
	f.addToCart(t, bob.ID, pizza, 3)

	require.NoError(t, f.cart.Clear(alice.ID))

	lines, err := f.cart.List(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	lines, err = f.cart.List(bob.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestCartClearIsIdempotent(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "alice")
	pizza := f.menuItem(t, "Pizza", "12.50")

	require.NoError(t, f.cart.Clear(u.ID))
	f.addToCart(t, u.ID, pizza, 1)
	require.NoError(t, f.cart.Clear(u.ID))
	require.NoError(t, f.cart.Clear(u.ID))

	// the same (user, menu item) pair can be added again after a clear
	line := f.addToCart(t, u.ID, pizza, 2)
	assert.Equal(t, 2, line.Quantity)
}
