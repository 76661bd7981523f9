package ledger

import "github.com/shopspring/decimal"

const placeholderImage = "https://placehold.co/600x400.png"

// seedProduct entrada del catálogo de demostración.
type seedProduct struct {
	name  string
	price int64 // COP, sin centavos
	stock int
}

// Catálogo inicial de la pastelería para ambientes de demo/desarrollo.
var demoCatalog = []seedProduct{
	{"Torta Red Velvet", 50000, 10},
	{"Galletas con Chips de Chocolate", 2500, 150},
	{"Cheesecake", 60000, 8},
	{"Brownies", 5000, 75},
	{"Tarta de Manzana", 45000, 12},
	{"Macarons", 4000, 200},
}

// SeedDemo carga el catálogo de demostración y devuelve cuántos productos agregó.
// Pensado para arrancar con datos visibles; controlado por SEED_DEMO en config.
func (l *Ledger) SeedDemo() (int, error) {
	for _, sp := range demoCatalog {
		if _, err := l.AddProduct(sp.name, decimal.NewFromInt(sp.price), sp.stock, placeholderImage); err != nil {
			return 0, err
		}
	}
	return len(demoCatalog), nil
}
