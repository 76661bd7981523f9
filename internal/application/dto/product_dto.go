package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// La imagen llega como URL o como archivo codificado en base64 (nunca ambos);
// si no llega ninguna se usa una imagen de relleno.
type CreateProductRequest struct {
	Name      string          `json:"name" validate:"required,min=1,max=200"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	ImageURL  string          `json:"image_url"`
	ImageData string          `json:"image_data"` // contenido del archivo en base64
	ImageMime string          `json:"image_mime"` // ej. image/png; requerido si viene image_data
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
// El ID nunca se modifica.
type UpdateProductRequest struct {
	Name      *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price     *decimal.Decimal `json:"price"`
	Stock     *int             `json:"stock"`
	ImageURL  *string          `json:"image_url"`
	ImageData *string          `json:"image_data"`
	ImageMime *string          `json:"image_mime"`
}

// AdjustStockRequest entrada para fijar el stock en un valor absoluto.
type AdjustStockRequest struct {
	Stock int `json:"stock"`
}

// ProductResponse salida de un producto.
// InStock es una clasificación derivada del stock, calculada al responder.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	InStock   bool            `json:"in_stock"`
	ImageURL  string          `json:"image_url"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListResponse catálogo completo (sesión única, sin paginación).
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
