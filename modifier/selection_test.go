package modifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-gateway/models"
)

func burgerProduct() models.Product {
	return models.Product{
		ID:        42,
		Vendor:    3,
		Name:      "برگر ویژه",
		BasePrice: 240000,
		OptionGroups: []models.OptionGroup{
			{
				ID: 1, Name: "سس", IsRequired: true, MaxSelect: 2, SortOrder: 1,
				Items: []models.OptionItem{
					{ID: 10, Name: "سس قارچ", PriceDelta: 15000, SortOrder: 1},
					{ID: 11, Name: "سس تند", PriceDelta: 10000, SortOrder: 2},
					{ID: 12, Name: "بدون سس", PriceDelta: 0, SortOrder: 3},
				},
			},
			{
				ID: 2, Name: "نوشیدنی", MaxSelect: 3, SortOrder: 2,
				Items: []models.OptionItem{
					{ID: 20, Name: "نوشابه", PriceDelta: 25000, SortOrder: 1},
					{ID: 21, Name: "دوغ", PriceDelta: 20000, SortOrder: 2},
					{ID: 22, Name: "بدون نوشیدنی", PriceDelta: 0, SortOrder: 3},
				},
			},
		},
	}
}

func TestSetRejectsUnknownGroupAndItem(t *testing.T) {
	sel := NewSelection(burgerProduct())
	assert.ErrorIs(t, sel.Set(99, 10, 1), ErrUnknownGroup)
	assert.ErrorIs(t, sel.Set(1, 99, 1), ErrUnknownItem)
}

func TestNoneItemClearsOtherSelections(t *testing.T) {
	sel := NewSelection(burgerProduct())
	require.NoError(t, sel.Set(1, 10, 1))
	require.NoError(t, sel.Set(1, 11, 1))

	require.NoError(t, sel.Set(1, 12, 1)) // بدون سس
	assert.Equal(t, 0, sel.Quantity(1, 10))
	assert.Equal(t, 0, sel.Quantity(1, 11))
	assert.Equal(t, 1, sel.Quantity(1, 12))
}

func TestRealSelectionDisplacesNone(t *testing.T) {
	sel := NewSelection(burgerProduct())
	require.NoError(t, sel.Set(1, 12, 1))
	require.NoError(t, sel.Set(1, 10, 1))

	assert.Equal(t, 0, sel.Quantity(1, 12))
	assert.Equal(t, 1, sel.Quantity(1, 10))
}

func TestSetZeroRemovesSelection(t *testing.T) {
	sel := NewSelection(burgerProduct())
	require.NoError(t, sel.Set(1, 10, 2))
	require.NoError(t, sel.Set(1, 10, 0))
	assert.Equal(t, 0, sel.SelectedCount(1))
}

func TestToggle(t *testing.T) {
	sel := NewSelection(burgerProduct())
	require.NoError(t, sel.Toggle(2, 20))
	assert.Equal(t, 1, sel.Quantity(2, 20))
	require.NoError(t, sel.Toggle(2, 20))
	assert.Equal(t, 0, sel.Quantity(2, 20))
}

func TestValidateRequiredGroup(t *testing.T) {
	sel := NewSelection(burgerProduct())

	err := sel.Validate()
	require.Error(t, err)
	var constraint *ConstraintError
	require.ErrorAs(t, err, &constraint)
	assert.Equal(t, "سس", constraint.Group)
	assert.Contains(t, constraint.Message, "required")
}

func TestValidateMaxSelect(t *testing.T) {
	sel := NewSelection(burgerProduct())
	require.NoError(t, sel.Set(1, 10, 2))
	require.NoError(t, sel.Set(1, 11, 1))

	err := sel.Validate()
	var constraint *ConstraintError
	require.ErrorAs(t, err, &constraint)
	assert.Equal(t, "سس", constraint.Group)
	assert.Contains(t, constraint.Message, "At most 2")
}

func TestNoneItemSatisfiesRequiredGroup(t *testing.T) {
	sel := NewSelection(burgerProduct())
	require.NoError(t, sel.Set(1, 12, 1))
	assert.NoError(t, sel.Validate())
}

func TestConfirmPricesAndOrdersModifiers(t *testing.T) {
	sel := NewSelection(burgerProduct())
	require.NoError(t, sel.Set(2, 20, 1)) // drink first, out of catalog order
	require.NoError(t, sel.Set(1, 10, 1))

	line, err := sel.Confirm()
	require.NoError(t, err)

	// 240000 base + 15000 sauce + 25000 drink
	assert.Equal(t, int64(280000), line.UnitPrice)
	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, uint(42), line.ProductID)
	assert.Equal(t, uint(3), line.Vendor)

	// catalog order, not selection order
	require.Len(t, line.Modifiers, 2)
	assert.Equal(t, uint(10), line.Modifiers[0].ItemID)
	assert.Equal(t, uint(20), line.Modifiers[1].ItemID)
	assert.Equal(t, "سس", line.Modifiers[0].GroupName)
}

func TestConfirmMultiQuantityDelta(t *testing.T) {
	sel := NewSelection(burgerProduct())
	require.NoError(t, sel.Set(1, 10, 1))
	require.NoError(t, sel.Set(2, 21, 2))

	line, err := sel.Confirm()
	require.NoError(t, err)
	assert.Equal(t, int64(240000+15000+2*20000), line.UnitPrice)
}

func TestConfirmBlockedByConstraint(t *testing.T) {
	sel := NewSelection(burgerProduct())
	_, err := sel.Confirm()
	var constraint *ConstraintError
	assert.ErrorAs(t, err, &constraint)
}

func TestCancelResetsPicks(t *testing.T) {
	sel := NewSelection(burgerProduct())
	require.NoError(t, sel.Set(1, 10, 1))
	sel.Cancel()
	assert.Equal(t, 0, sel.SelectedCount(1))
}

func TestEffectiveMinSelect(t *testing.T) {
	assert.Equal(t, 2, models.OptionGroup{MinSelect: 2, IsRequired: true}.EffectiveMinSelect())
	assert.Equal(t, 1, models.OptionGroup{IsRequired: true}.EffectiveMinSelect())
	assert.Equal(t, 0, models.OptionGroup{}.EffectiveMinSelect())
}

func TestIsNoneItem(t *testing.T) {
	assert.True(t, IsNoneItem("بدون سس"))
	assert.True(t, IsNoneItem("سس نمی‌خواهم"))
	assert.False(t, IsNoneItem("سس قارچ"))
}
