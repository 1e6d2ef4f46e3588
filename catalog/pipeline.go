package catalog

import (
	"sort"
	"strings"

	"github.com/Migueeel08/focoshop-sub000/models"
)

// Sort strategy names accepted by Apply.
const (
	SortRelevant     = "relevant"
	SortLowestPrice  = "lowest-price"
	SortHighestPrice = "highest-price"
	SortBestSelling  = "best-selling"
)

// FilterState is the full set of narrowing criteria the storefront can apply
// to the catalog. Nil price/rating pointers mean "not set".
type FilterState struct {
	Query         string
	Category      string
	Subcategory   string
	ConditionNew  bool
	ConditionUsed bool
	MinPrice      *float64
	MaxPrice      *float64
	Brands        []string
	MinRating     *float64
	SortBy        string
}

// ResetForCategory is the one named transition that clears every filter:
// changing category drops the query, condition flags, price bounds, brand set
// and rating threshold, keeping only the new category and the default sort.
func ResetForCategory(category string) FilterState {
	return FilterState{
		Category: category,
		SortBy:   SortRelevant,
	}
}

// Apply derives the display list from the full catalog. It is a pure function:
// the source slice is never mutated and the same inputs always produce the
// same output. A non-empty query switches to global search mode, where
// candidates come from the whole catalog instead of the selected category.
func Apply(items []models.Product, f FilterState) []models.Product {
	query := Normalize(f.Query)
	category := Normalize(f.Category)
	subcategory := Normalize(f.Subcategory)

	out := make([]models.Product, 0, len(items))
	for _, p := range items {
		if !IsAvailable(p) {
			continue
		}
		if query != "" {
			if !matchesQuery(p, query) {
				continue
			}
		} else {
			if category != "" && Normalize(p.Category) != category {
				continue
			}
			if subcategory != "" && Normalize(p.Subcategory) != subcategory {
				continue
			}
		}
		if !matchesCondition(p, f) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if len(f.Brands) > 0 && !brandIn(p.Brand, f.Brands) {
			continue
		}
		if f.MinRating != nil && p.Rating < *f.MinRating {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, f.SortBy)
	return out
}

func matchesQuery(p models.Product, query string) bool {
	for _, field := range []string{p.Name, p.Description, p.Category, p.Subcategory, p.Brand} {
		if strings.Contains(Normalize(field), query) {
			return true
		}
	}
	return false
}

func matchesCondition(p models.Product, f FilterState) bool {
	if !f.ConditionNew && !f.ConditionUsed {
		return true
	}
	condition := Normalize(p.Condition)
	if f.ConditionNew && condition == "nuevo" {
		return true
	}
	if f.ConditionUsed && condition == "usado" {
		return true
	}
	return false
}

func brandIn(brand string, set []string) bool {
	b := Normalize(brand)
	for _, s := range set {
		if Normalize(s) == b {
			return true
		}
	}
	return false
}

func sortProducts(items []models.Product, strategy string) {
	switch strategy {
	case SortLowestPrice:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortHighestPrice:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case SortBestSelling:
		sort.SliceStable(items, func(i, j int) bool { return items[i].ReviewCount > items[j].ReviewCount })
	default: // SortRelevant
		sort.SliceStable(items, func(i, j int) bool { return relevance(items[i]) > relevance(items[j]) })
	}
}

// relevance is the historical rating×reviews proxy. Zero-review items score 0
// no matter how high their rating; kept as-is until product says otherwise.
func relevance(p models.Product) float64 {
	return p.Rating * float64(p.ReviewCount)
}

// Metadata summarizes the catalog for the storefront filter panel: stock
// counts, the category tree, brand counts and the observed price range, all
// restricted to available products except the availability counts themselves.
func Metadata(items []models.Product) models.FilterMetadata {
	availability := &models.AvailabilityData{}
	brands := map[string]int{}
	brandNames := map[string]string{}
	categories := map[string][]string{}
	categoryNames := map[string]string{}
	categoryOrder := []string{}
	seenSub := map[string]struct{}{}

	var priceMin, priceMax float64
	havePrice := false

	for _, p := range items {
		if !IsAvailable(p) {
			availability.OutOfStock++
			continue
		}
		availability.InStock++

		if cat := Normalize(p.Category); cat != "" {
			if _, ok := categoryNames[cat]; !ok {
				categoryNames[cat] = p.Category
				categoryOrder = append(categoryOrder, cat)
			}
			if sub := Normalize(p.Subcategory); sub != "" {
				if _, ok := seenSub[cat+"/"+sub]; !ok {
					seenSub[cat+"/"+sub] = struct{}{}
					categories[cat] = append(categories[cat], p.Subcategory)
				}
			}
		}

		if b := Normalize(p.Brand); b != "" {
			if _, ok := brandNames[b]; !ok {
				brandNames[b] = p.Brand
			}
			brands[b]++
		}

		if !havePrice || p.Price < priceMin {
			priceMin = p.Price
		}
		if !havePrice || p.Price > priceMax {
			priceMax = p.Price
		}
		havePrice = true
	}

	meta := models.FilterMetadata{Availability: availability}

	for _, cat := range categoryOrder {
		subs := categories[cat]
		sort.Strings(subs)
		meta.Categories = append(meta.Categories, models.CategoryData{
			Name:          categoryNames[cat],
			Subcategories: subs,
		})
	}

	for key, count := range brands {
		meta.Brands = append(meta.Brands, models.BrandCount{Name: brandNames[key], Count: count})
	}
	sort.Slice(meta.Brands, func(i, j int) bool {
		if meta.Brands[i].Count != meta.Brands[j].Count {
			return meta.Brands[i].Count > meta.Brands[j].Count
		}
		return meta.Brands[i].Name < meta.Brands[j].Name
	})

	if havePrice {
		meta.PriceRange = &models.PriceRangeData{Min: priceMin, Max: priceMax}
	}
	return meta
}
