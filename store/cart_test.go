package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-gateway/models"
)

func TestCartAddAssignsDistinctLines(t *testing.T) {
	cart := NewCart()

	first := cart.Add(models.CartItem{ProductID: 7, UnitPrice: 240000, Quantity: 1})
	second := cart.Add(models.CartItem{ProductID: 7, UnitPrice: 280000, Quantity: 1})

	require.NotEmpty(t, first.LineID)
	require.NotEmpty(t, second.LineID)
	// same product, different configuration: two independent lines
	assert.NotEqual(t, first.LineID, second.LineID)
	assert.Equal(t, 2, cart.Len())
}

func TestCartAddClampsQuantityToOne(t *testing.T) {
	cart := NewCart()
	stored := cart.Add(models.CartItem{ProductID: 1, UnitPrice: 100, Quantity: 0})
	assert.Equal(t, 1, stored.Quantity)
	assert.Equal(t, int64(100), cart.Subtotal())
}

func TestCartSubtotalAndItemCount(t *testing.T) {
	cart := NewCart()
	cart.Add(models.CartItem{ProductID: 1, UnitPrice: 280000, Quantity: 2})
	cart.Add(models.CartItem{ProductID: 2, UnitPrice: 95000, Quantity: 1})

	assert.Equal(t, int64(2*280000+95000), cart.Subtotal())
	assert.Equal(t, 3, cart.ItemCount())
	assert.Equal(t, 2, cart.Len())
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := NewCart()
	line := cart.Add(models.CartItem{ProductID: 1, UnitPrice: 50000, Quantity: 1})

	require.NoError(t, cart.UpdateQuantity(line.LineID, 3))
	assert.Equal(t, int64(150000), cart.Subtotal())

	assert.ErrorIs(t, cart.UpdateQuantity(line.LineID, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.UpdateQuantity(line.LineID, -2), ErrInvalidQuantity)
	// rejected updates leave the line untouched
	assert.Equal(t, int64(150000), cart.Subtotal())

	assert.ErrorIs(t, cart.UpdateQuantity("missing", 2), ErrLineNotFound)
}

func TestCartRemove(t *testing.T) {
	cart := NewCart()
	keep := cart.Add(models.CartItem{ProductID: 1, UnitPrice: 10, Quantity: 1})
	drop := cart.Add(models.CartItem{ProductID: 2, UnitPrice: 20, Quantity: 1})

	cart.Remove(drop.LineID)
	require.Equal(t, 1, cart.Len())
	assert.Equal(t, keep.LineID, cart.Items()[0].LineID)

	// unknown line is a no-op
	cart.Remove("missing")
	assert.Equal(t, 1, cart.Len())
}

func TestCartClear(t *testing.T) {
	cart := NewCart()
	cart.Add(models.CartItem{ProductID: 1, UnitPrice: 10, Quantity: 1})
	cart.Clear()

	assert.Equal(t, 0, cart.Len())
	assert.Equal(t, int64(0), cart.Subtotal())
	assert.Empty(t, cart.Items())
}

func TestCartItemsReturnsCopy(t *testing.T) {
	cart := NewCart()
	cart.Add(models.CartItem{ProductID: 1, UnitPrice: 10, Quantity: 1})

	items := cart.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, cart.Items()[0].Quantity)
}
