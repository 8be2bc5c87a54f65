package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryByTerm(t *testing.T) {
	res := Query("shawarma", Filters{})

	require.True(t, res.HasResults)
	for _, it := range res.Items {
		assert.Contains(t, it.Name+" "+it.Description+" "+it.Category, "hawarma")
	}
}

func TestQueryTermMatchesDescription(t *testing.T) {
	// "tilapia" appears only in the grilled-fish description
	res := Query("tilapia", Filters{})

	require.Equal(t, 1, res.TotalCount)
	assert.Equal(t, "grilled-fish", res.Items[0].ItemID)
}

func TestQueryFilters(t *testing.T) {
	res := Query("", Filters{Category: "shawarma", Vegetarian: true})
	require.Equal(t, 1, res.TotalCount)
	assert.Equal(t, "vegetarian-shawarma", res.Items[0].ItemID)

	res = Query("", Filters{Spicy: true})
	require.True(t, res.HasResults)
	for _, it := range res.Items {
		assert.True(t, it.IsSpicy)
	}
}

func TestQueryPriceRange(t *testing.T) {
	res := Query("", Filters{MinPrice: 300, MaxPrice: 500})

	require.True(t, res.HasResults)
	for _, it := range res.Items {
		assert.GreaterOrEqual(t, it.Price, 300)
		assert.LessOrEqual(t, it.Price, 500)
	}
}

func TestQueryNoResults(t *testing.T) {
	res := Query("pizza", Filters{})

	assert.False(t, res.HasResults)
	assert.Equal(t, 0, res.TotalCount)
	assert.NotNil(t, res.Items, "items must encode as [], not null")
}

func TestQueryCombinesTermAndFilters(t *testing.T) {
	// spicy items mentioning "shawarma"
	res := Query("shawarma", Filters{Spicy: true})

	require.Equal(t, 1, res.TotalCount)
	assert.Equal(t, "lagos-fire", res.Items[0].ItemID)
}
