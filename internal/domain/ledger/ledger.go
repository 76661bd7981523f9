// Package ledger implementa el libro de inventario en memoria: el dueño
// exclusivo del catálogo de productos y del historial de ventas.
//
// Toda mutación de stock pasa por aquí. Cada operación aplica completa o deja
// el estado intacto; no existen mutaciones parciales. El historial de ventas
// es append-only, en orden de creación.
package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/polipostres-api/internal/domain"
	"github.com/jhoicas/polipostres-api/internal/domain/entity"
)

// ProductPatch campos actualizables de un producto (nil = no modificar).
// El ID nunca es modificable.
type ProductPatch struct {
	Name     *string
	Price    *decimal.Decimal
	Stock    *int
	ImageRef *string
}

// Ledger mantiene productos y ventas en memoria para una sesión del proceso.
//
// El mutex existe porque el ledger se sirve desde handlers HTTP concurrentes;
// cada operación es una sección crítica corta sin I/O, así que un Mutex simple
// basta (no hay lectores de larga duración que justifiquen RWMutex).
type Ledger struct {
	mu       sync.Mutex
	products []*entity.Product
	index    map[string]*entity.Product // id → producto, misma instancia que en products
	sales    []*entity.Sale
}

// New construye un ledger vacío.
func New() *Ledger {
	return &Ledger{index: make(map[string]*entity.Product)}
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

// AddProduct valida, genera el ID y agrega el producto al catálogo.
func (l *Ledger) AddProduct(name string, price decimal.Decimal, stock int, imageRef string) (*entity.Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if err := validateStock(stock); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now().UTC()
	p := &entity.Product{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(name),
		Price:     price,
		Stock:     stock,
		ImageRef:  imageRef,
		CreatedAt: now,
		UpdatedAt: now,
	}
	l.products = append(l.products, p)
	l.index[p.ID] = p
	return snapshot(p), nil
}

// EditProduct reemplaza los campos indicados del producto; los demás quedan igual.
// Valida todos los campos antes de tocar el producto para no dejar una edición a medias.
func (l *Ledger) EditProduct(id string, patch ProductPatch) (*entity.Product, error) {
	if patch.Name != nil {
		if err := validateName(*patch.Name); err != nil {
			return nil, err
		}
	}
	if patch.Price != nil {
		if err := validatePrice(*patch.Price); err != nil {
			return nil, err
		}
	}
	if patch.Stock != nil {
		if err := validateStock(*patch.Stock); err != nil {
			return nil, err
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.ImageRef != nil {
		p.ImageRef = *patch.ImageRef
	}
	p.UpdatedAt = time.Now().UTC()
	return snapshot(p), nil
}

// DeleteProduct elimina el producto del catálogo de inmediato.
// Devuelve ErrNotFound si el id no existe (decisión documentada: no es no-op).
// Las ventas ya registradas contra el producto no se tocan: son hechos históricos.
func (l *Ledger) DeleteProduct(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.index[id]; !ok {
		return domain.ErrNotFound
	}
	delete(l.index, id)
	for i, p := range l.products {
		if p.ID == id {
			l.products = append(l.products[:i], l.products[i+1:]...)
			break
		}
	}
	return nil
}

// AdjustStock fija el stock en un valor absoluto (corrección administrativa,
// no genera venta ni movimiento alguno).
func (l *Ledger) AdjustStock(id string, newStock int) (*entity.Product, error) {
	if err := validateStock(newStock); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Stock = newStock
	p.UpdatedAt = time.Now().UTC()
	return snapshot(p), nil
}

// ── Ventas ────────────────────────────────────────────────────────────────────

// RecordSale descuenta stock y registra la venta de forma atómica: ambas cosas
// ocurren o ninguna. El precio total se congela con el precio vigente del
// producto; cambios de precio posteriores no afectan ventas pasadas.
func (l *Ledger) RecordSale(productID string, quantity int) (*entity.Sale, error) {
	if quantity < 1 {
		return nil, &domain.ValidationError{Field: "quantity", Reason: "debe ser al menos 1"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.index[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Stock < quantity {
		return nil, &domain.InsufficientStockError{
			ProductID: productID,
			Requested: quantity,
			Available: p.Stock,
		}
	}

	now := time.Now().UTC()
	s := &entity.Sale{
		ID:          uuid.New().String(),
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    quantity,
		TotalPrice:  p.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Timestamp:   now,
	}
	p.Stock -= quantity
	p.UpdatedAt = now
	l.sales = append(l.sales, s)

	out := *s
	return &out, nil
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

// GetProduct devuelve una copia del producto.
func (l *Ledger) GetProduct(id string) (*entity.Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.index[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return snapshot(p), nil
}

// Products devuelve una copia del catálogo en orden de creación.
func (l *Ledger) Products() []entity.Product {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]entity.Product, 0, len(l.products))
	for _, p := range l.products {
		out = append(out, *p)
	}
	return out
}

// Sales devuelve una copia del historial en orden de registro (ascendente).
// El orden de presentación (más reciente primero) es asunto de la capa HTTP.
func (l *Ledger) Sales() []entity.Sale {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]entity.Sale, 0, len(l.sales))
	for _, s := range l.sales {
		out = append(out, *s)
	}
	return out
}

// ── Validaciones ──────────────────────────────────────────────────────────────

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "no puede estar vacío"}
	}
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return &domain.ValidationError{Field: "price", Reason: "no puede ser negativo"}
	}
	return nil
}

func validateStock(stock int) error {
	if stock < 0 {
		return &domain.ValidationError{Field: "stock", Reason: "no puede ser negativo"}
	}
	return nil
}

// snapshot copia el producto para que el caller no pueda mutar el estado interno.
func snapshot(p *entity.Product) *entity.Product {
	out := *p
	return &out
}
