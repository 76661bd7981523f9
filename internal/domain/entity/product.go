package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Stock es la cantidad de unidades disponibles; nunca puede ser negativo.
// ImageRef es una referencia opaca (URL o data-URL) resuelta antes de llegar aquí.
type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal // precio de venta unitario
	Stock     int
	ImageRef  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InStock clasifica el producto según su stock actual.
// Se calcula en lectura; nunca se almacena como campo aparte.
func (p *Product) InStock() bool { return p.Stock > 0 }
