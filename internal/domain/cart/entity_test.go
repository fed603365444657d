package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItem_MergesSameProduct(t *testing.T) {
	c := NewCart(7)

	require.NoError(t, c.AddItem(1, 2))
	require.NoError(t, c.AddItem(1, 3))

	assert.Equal(t, []Item{{ProductID: 1, Quantity: 5}}, c.Items)
}

func TestCart_AddItem_RejectsNonPositive(t *testing.T) {
	c := NewCart(7)

	assert.ErrorIs(t, c.AddItem(1, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.AddItem(1, -1), ErrInvalidQuantity)
	assert.True(t, c.IsEmpty())
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := NewCart(7)
	require.NoError(t, c.AddItem(1, 2))
	require.NoError(t, c.AddItem(2, 1))

	require.NoError(t, c.UpdateQuantity(2, 4))
	assert.Equal(t, 4, c.Items[1].Quantity)

	// 0 移除该行
	require.NoError(t, c.UpdateQuantity(1, 0))
	assert.Equal(t, []Item{{ProductID: 2, Quantity: 4}}, c.Items)

	assert.ErrorIs(t, c.UpdateQuantity(2, -1), ErrNegativeQuantity)
	assert.Equal(t, 4, c.Items[0].Quantity)

	assert.ErrorIs(t, c.UpdateQuantity(99, 1), ErrItemNotFound)
}

func TestCart_RemoveItem(t *testing.T) {
	c := NewCart(7)
	require.NoError(t, c.AddItem(1, 2))

	assert.ErrorIs(t, c.RemoveItem(3), ErrItemNotFound)
	require.NoError(t, c.RemoveItem(1))
	assert.True(t, c.IsEmpty())
	assert.NotNil(t, c.Items)
}
