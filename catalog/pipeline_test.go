package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Migueeel08/focoshop-sub000/models"
)

func available(id int, name, category string) models.Product {
	return models.Product{
		ID:        id,
		Name:      name,
		Category:  category,
		Price:     100,
		Stock:     10,
		Available: true,
	}
}

func testCatalog() []models.Product {
	phone := available(1, "Teléfono X", "Tecnología")
	phone.Brand = "Nokia"
	phone.Price = 299
	phone.Rating = 4.5
	phone.ReviewCount = 20
	phone.Condition = "nuevo"

	laptop := available(2, "Laptop Pro", "Tecnología")
	laptop.Brand = "Lenovo"
	laptop.Price = 999
	laptop.Rating = 4.8
	laptop.ReviewCount = 5
	laptop.Condition = "usado"
	laptop.Subcategory = "Computadoras"

	shoe := available(3, "Zapatilla X-Run", "Calzado")
	shoe.Brand = "Adidas"
	shoe.Price = 80
	shoe.Rating = 3.9
	shoe.ReviewCount = 40
	shoe.Condition = "nuevo"

	soldOut := available(4, "Audífonos", "Tecnología")
	soldOut.Stock = 0

	hidden := available(5, "Monitor", "Tecnología")
	hidden.Available = false

	archived := available(6, "Teclado", "Tecnología")
	archived.Status = "archivado"

	return []models.Product{phone, laptop, shoe, soldOut, hidden, archived}
}

func TestAvailabilityGate(t *testing.T) {
	items := testCatalog()
	out := Apply(items, FilterState{})

	ids := make([]int, 0, len(out))
	for _, p := range out {
		ids = append(ids, p.ID)
	}
	assert.NotContains(t, ids, 4, "stock 0 must be excluded")
	assert.NotContains(t, ids, 5, "disponible=false must be excluded")
	assert.NotContains(t, ids, 6, "non-active status must be excluded")
	assert.Len(t, out, 3)
}

func TestStockZeroExcludedUnderAnyFilter(t *testing.T) {
	items := testCatalog()
	states := []FilterState{
		{},
		{Category: "Tecnología"},
		{Query: "audifonos"},
		{SortBy: SortLowestPrice},
	}
	for _, state := range states {
		for _, p := range Apply(items, state) {
			assert.NotEqual(t, 4, p.ID)
		}
	}
}

func TestCategoryMode(t *testing.T) {
	items := testCatalog()

	out := Apply(items, FilterState{Category: "tecnologia"}) // accent-insensitive
	require.Len(t, out, 2)
	for _, p := range out {
		assert.Equal(t, "Tecnología", p.Category)
	}

	out = Apply(items, FilterState{Category: "Tecnología", Subcategory: "computadoras"})
	require.Len(t, out, 1)
	assert.Equal(t, 2, out[0].ID)
}

func TestSearchModeCrossesCategories(t *testing.T) {
	// Query matches one item in Tecnología and one in Calzado; the selected
	// category must not restrict search mode.
	items := testCatalog()
	out := Apply(items, FilterState{Query: "x", Category: "Tecnología"})

	ids := make([]int, 0, len(out))
	for _, p := range out {
		ids = append(ids, p.ID)
	}
	assert.Contains(t, ids, 1, "Teléfono X")
	assert.Contains(t, ids, 3, "Zapatilla X-Run from another category")
}

func TestSearchMatchesAllTextFields(t *testing.T) {
	items := testCatalog()

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"by name with accents", "teléfono", 1},
		{"by brand", "lenovo", 2},
		{"by subcategory", "computadoras", 2},
		{"by category", "calzado", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Apply(items, FilterState{Query: tt.query})
			require.NotEmpty(t, out)
			assert.Equal(t, tt.want, out[0].ID)
		})
	}
}

func TestSecondaryFilters(t *testing.T) {
	items := testCatalog()

	t.Run("condition", func(t *testing.T) {
		out := Apply(items, FilterState{ConditionUsed: true})
		require.Len(t, out, 1)
		assert.Equal(t, 2, out[0].ID)

		out = Apply(items, FilterState{ConditionNew: true, ConditionUsed: true})
		assert.Len(t, out, 3)
	})

	t.Run("price range", func(t *testing.T) {
		min, max := 100.0, 500.0
		out := Apply(items, FilterState{MinPrice: &min, MaxPrice: &max})
		require.Len(t, out, 1)
		assert.Equal(t, 1, out[0].ID)
	})

	t.Run("brand set", func(t *testing.T) {
		out := Apply(items, FilterState{Brands: []string{"ADIDAS", "nokia"}})
		assert.Len(t, out, 2)
	})

	t.Run("min rating", func(t *testing.T) {
		threshold := 4.0
		out := Apply(items, FilterState{MinRating: &threshold})
		assert.Len(t, out, 2)
	})
}

func TestSortStrategies(t *testing.T) {
	items := testCatalog()

	t.Run("lowest-price", func(t *testing.T) {
		out := Apply(items, FilterState{SortBy: SortLowestPrice})
		require.Len(t, out, 3)
		assert.Equal(t, []int{3, 1, 2}, []int{out[0].ID, out[1].ID, out[2].ID})
	})

	t.Run("highest-price", func(t *testing.T) {
		out := Apply(items, FilterState{SortBy: SortHighestPrice})
		require.Len(t, out, 3)
		assert.Equal(t, 2, out[0].ID)
	})

	t.Run("best-selling", func(t *testing.T) {
		out := Apply(items, FilterState{SortBy: SortBestSelling})
		require.Len(t, out, 3)
		assert.Equal(t, 3, out[0].ID, "most reviews first")
	})
}

func TestRelevantSortZeroReviewsSink(t *testing.T) {
	highRatingNoReviews := available(10, "A", "Tecnología")
	highRatingNoReviews.Rating = 5
	highRatingNoReviews.ReviewCount = 0

	lowRatingManyReviews := available(11, "B", "Tecnología")
	lowRatingManyReviews.Rating = 3
	lowRatingManyReviews.ReviewCount = 10

	out := Apply([]models.Product{highRatingNoReviews, lowRatingManyReviews}, FilterState{})
	require.Len(t, out, 2)
	assert.Equal(t, 11, out[0].ID, "3*10 outranks 5*0")
	assert.Equal(t, 10, out[1].ID)
}

func TestApplyIsIdempotentAndPure(t *testing.T) {
	items := testCatalog()
	state := FilterState{Category: "Tecnología", SortBy: SortLowestPrice}

	first := Apply(items, state)
	second := Apply(items, state)
	assert.Equal(t, first, second, "same inputs must yield identical output")

	// Source order untouched after sorting the derived list.
	assert.Equal(t, 1, items[0].ID)
	assert.Equal(t, 2, items[1].ID)
}

func TestResetForCategory(t *testing.T) {
	state := ResetForCategory("Calzado")
	assert.Equal(t, "Calzado", state.Category)
	assert.Equal(t, SortRelevant, state.SortBy)
	assert.Empty(t, state.Query)
	assert.Nil(t, state.MinPrice)
	assert.Nil(t, state.MinRating)
	assert.Empty(t, state.Brands)
	assert.False(t, state.ConditionNew)
	assert.False(t, state.ConditionUsed)
}

func TestMetadata(t *testing.T) {
	meta := Metadata(testCatalog())

	require.NotNil(t, meta.Availability)
	assert.Equal(t, 3, meta.Availability.InStock)
	assert.Equal(t, 3, meta.Availability.OutOfStock)

	require.Len(t, meta.Categories, 2)
	assert.Equal(t, "Tecnología", meta.Categories[0].Name)
	assert.Equal(t, []string{"Computadoras"}, meta.Categories[0].Subcategories)
	assert.Equal(t, "Calzado", meta.Categories[1].Name)
	assert.Empty(t, meta.Categories[1].Subcategories)

	require.NotNil(t, meta.PriceRange)
	assert.Equal(t, 80.0, meta.PriceRange.Min)
	assert.Equal(t, 999.0, meta.PriceRange.Max)

	require.Len(t, meta.Brands, 3)
}
