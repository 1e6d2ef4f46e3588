package models

// FilterMetadata is everything the storefront needs to render its filter panel.
type FilterMetadata struct {
	Availability *AvailabilityData `json:"availability"`
	Categories   []CategoryData    `json:"categories"`
	Brands       []BrandCount      `json:"brands"`
	PriceRange   *PriceRangeData   `json:"priceRange"`
}

// AvailabilityData represents product availability counts
type AvailabilityData struct {
	InStock    int `json:"inStock"`
	OutOfStock int `json:"outOfStock"`
}

// CategoryData represents a category with its subcategories
type CategoryData struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories,omitempty"`
}

// BrandCount is a brand and how many available products carry it
type BrandCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// PriceRangeData represents the minimum and maximum price in the catalog
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
