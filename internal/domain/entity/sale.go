package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es un hecho histórico inmutable: nunca se edita ni se borra.
//
// ProductName y TotalPrice son instantáneas tomadas en el momento de la venta;
// no se recalculan si el producto cambia de precio o se elimina después.
// ProductID es una referencia hacia atrás, no un vínculo de propiedad: la venta
// sigue siendo válida aunque el producto ya no exista en el catálogo.
type Sale struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int
	TotalPrice  decimal.Decimal // Quantity × precio vigente al vender
	Timestamp   time.Time       // UTC
}
