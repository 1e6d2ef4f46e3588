package models

// Product is a catalog item as served by the FocoShop API. JSON tags follow the
// upstream (Spanish) wire format so the gateway can relay items unchanged.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"nombre"`
	Description string  `json:"descripcion"`
	Price       float64 `json:"precio"`
	Category    string  `json:"categoria"`
	Subcategory string  `json:"subcategoria,omitempty"`
	Brand       string  `json:"marca,omitempty"`
	Condition   string  `json:"condicion,omitempty" example:"nuevo"`
	Rating      float64 `json:"calificacion"`
	ReviewCount int     `json:"num_calificaciones"`
	Sales       int     `json:"ventas"`
	Stock       int     `json:"stock"`
	Available   bool    `json:"disponible"`
	Status      string  `json:"estado,omitempty"`
	Image       string  `json:"imagen,omitempty"`
}

// ═══════════════════════════════════════════════════════════
// Request Models (seller panel)
// ═══════════════════════════════════════════════════════════

type ProductRequest struct {
	Name        string  `json:"nombre" binding:"required" example:"Laptop Gamer"`
	Description string  `json:"descripcion" binding:"required"`
	Price       float64 `json:"precio" binding:"required,min=0" example:"999.99"`
	Category    string  `json:"categoria" binding:"required" example:"Tecnologia"`
	Subcategory string  `json:"subcategoria"`
	Brand       string  `json:"marca"`
	Condition   string  `json:"condicion" binding:"required,oneof=nuevo usado"`
	Stock       int     `json:"stock" binding:"min=0" example:"25"`
	Image       string  `json:"imagen"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"nombre"`
	Description *string  `json:"descripcion"`
	Price       *float64 `json:"precio" binding:"omitempty,min=0"`
	Category    *string  `json:"categoria"`
	Subcategory *string  `json:"subcategoria"`
	Brand       *string  `json:"marca"`
	Condition   *string  `json:"condicion" binding:"omitempty,oneof=nuevo usado"`
	Stock       *int     `json:"stock" binding:"omitempty,min=0"`
	Image       *string  `json:"imagen"`
	Status      *string  `json:"estado"`
}
