package models

import "time"

type Order struct {
	ID              int         `json:"id"`
	OrderNumber     string      `json:"numero_pedido"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	Shipping        float64     `json:"envio"`
	Tax             float64     `json:"impuesto"`
	Discount        float64     `json:"descuento"`
	Total           float64     `json:"total"`
	Status          string      `json:"estado"`
	CustomerName    string      `json:"nombre_cliente,omitempty"`
	CustomerEmail   string      `json:"email_cliente,omitempty"`
	ShippingAddress string      `json:"direccion_envio,omitempty"`
	CreatedAt       time.Time   `json:"fecha_creacion"`
}

type OrderItem struct {
	ProductID int     `json:"producto_id"`
	Name      string  `json:"nombre"`
	Price     float64 `json:"precio"`
	Quantity  int     `json:"cantidad"`
	Subtotal  float64 `json:"subtotal"`
}

// CreateOrderRequest is the checkout payload. Payment is delegated upstream:
// the gateway forwards the opaque token and never touches card data.
type CreateOrderRequest struct {
	ShippingAddress string `json:"direccion_envio" binding:"required"`
	CustomerNotes   string `json:"notas"`
	PaymentToken    string `json:"token_pago"`
}
