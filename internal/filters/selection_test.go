package filters

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chocozoo/storefront/internal/catalog"
)

func TestToggleTwiceRestoresPriorState(t *testing.T) {
	t.Parallel()

	start := Toggle(Empty(), catalog.CategorySize, "Small")
	cases := []struct {
		category catalog.Category
		value    string
	}{
		{catalog.CategorySize, "Large"},
		{catalog.CategorySize, "Small"},
		{catalog.CategoryDietary, "Vegan"},
		{catalog.CategoryOnSale, OnSaleOption},
	}
	for _, tc := range cases {
		once := Toggle(start, tc.category, tc.value)
		twice := Toggle(once, tc.category, tc.value)
		assert.True(t, twice.Equal(start), "toggle %s=%s twice", tc.category, tc.value)
		assert.Equal(t, start.Categories(), twice.Categories())
		require.NoError(t, twice.Check())
	}
}

func TestRemovingLastValueDropsCategory(t *testing.T) {
	t.Parallel()

	sel := Toggle(Empty(), catalog.CategoryDietary, "Vegan")
	require.True(t, sel.Has(catalog.CategoryDietary))

	sel = Toggle(sel, catalog.CategoryDietary, "Vegan")
	assert.False(t, sel.Has(catalog.CategoryDietary))
	assert.True(t, sel.IsEmpty())
	assert.Equal(t, 0, sel.Len())
	assert.NoError(t, sel.Check())
}

func TestToggleDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	base := Toggle(Empty(), catalog.CategorySize, "Small")
	_ = Toggle(base, catalog.CategorySize, "Large")
	_ = Toggle(base, catalog.CategorySize, "Small")

	assert.Equal(t, []string{"Small"}, base.Values(catalog.CategorySize))
}

func TestValuesKeepPickOrder(t *testing.T) {
	t.Parallel()

	sel := Toggle(Empty(), catalog.CategoryAnimalType, "Dog")
	sel = Toggle(sel, catalog.CategoryAnimalType, "Bear")
	sel = Toggle(sel, catalog.CategoryAnimalType, "Cat")
	sel = Toggle(sel, catalog.CategoryAnimalType, "Bear")
	assert.Equal(t, []string{"Dog", "Cat"}, sel.Values(catalog.CategoryAnimalType))
}

func TestClearAllEmptiesSelection(t *testing.T) {
	t.Parallel()

	sel := Toggle(Empty(), catalog.CategorySize, "Small")
	sel = Toggle(sel, catalog.CategoryOnSale, OnSaleOption)
	require.Equal(t, 2, sel.Len())
	assert.True(t, ClearAll().IsEmpty())
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	sel, err := FromMap(map[string][]string{
		"animalType": {"Bear", " Bear ", "", "Bird"},
		"isOnSale":   {OnSaleOption},
		"size":       {""},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bear", "Bird"}, sel.Values(catalog.CategoryAnimalType))
	assert.True(t, sel.Has(catalog.CategoryOnSale))
	assert.False(t, sel.Has(catalog.CategorySize), "blank values never create a key")

	_, err = FromMap(map[string][]string{"colour": {"Brown"}})
	assert.Error(t, err)

	_, err = FromMap(map[string][]string{"isOnSale": {"true"}})
	assert.Error(t, err)
}

func TestSelectionJSON(t *testing.T) {
	t.Parallel()

	sel := Toggle(Empty(), catalog.CategorySize, "Small")
	payload, err := json.Marshal(sel)
	require.NoError(t, err)
	assert.JSONEq(t, `{"size":["Small"]}`, string(payload))

	payload, err = json.Marshal(Empty())
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(payload))
}
