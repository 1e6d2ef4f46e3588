package models

type CartItem struct {
	ProductID int     `json:"producto_id"`
	Name      string  `json:"nombre"`
	Price     float64 `json:"precio"`
	Quantity  int     `json:"cantidad"`
	Image     string  `json:"imagen,omitempty"`
}

type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

type AddCartItemRequest struct {
	ProductID int `json:"producto_id" binding:"required"`
	Quantity  int `json:"cantidad" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"cantidad" binding:"required,min=1"`
}

// FavoriteToggleResult mirrors the upstream toggle response: Added reports
// whether the product ended up in the favorites set.
type FavoriteToggleResult struct {
	ProductID int  `json:"producto_id"`
	Added     bool `json:"agregado"`
}
