// Package analytics contiene proyecciones de solo lectura sobre el historial
// de ventas. Son funciones puras que se recalculan bajo demanda; no guardan
// estado propio ni cachés que puedan desincronizarse del ledger.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/polipostres-api/internal/domain/entity"
)

// DefaultTopN cantidad de productos en el ranking cuando no se indica otra.
const DefaultTopN = 5

// ProductUnits unidades vendidas acumuladas de un producto (agrupado por nombre).
type ProductUnits struct {
	Name  string
	Units int
}

// DailyRevenue ingresos acumulados de un día calendario (UTC).
type DailyRevenue struct {
	Day   time.Time // medianoche UTC del día
	Total decimal.Decimal
}

// TotalRevenue suma el precio total de todas las ventas.
func TotalRevenue(sales []entity.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.TotalPrice)
	}
	return total
}

// TotalUnitsSold suma las unidades vendidas de todas las ventas.
func TotalUnitsSold(sales []entity.Sale) int {
	units := 0
	for _, s := range sales {
		units += s.Quantity
	}
	return units
}

// TopProducts agrupa por nombre de producto, suma unidades y devuelve los n
// más vendidos en orden descendente. El desempate es estable: a igual cantidad
// gana el producto que apareció primero en el historial. n <= 0 usa DefaultTopN.
func TopProducts(sales []entity.Sale, n int) []ProductUnits {
	if n <= 0 {
		n = DefaultTopN
	}

	byName := make(map[string]int) // nombre → posición en ranking
	ranking := make([]ProductUnits, 0)
	for _, s := range sales {
		if i, ok := byName[s.ProductName]; ok {
			ranking[i].Units += s.Quantity
			continue
		}
		byName[s.ProductName] = len(ranking)
		ranking = append(ranking, ProductUnits{Name: s.ProductName, Units: s.Quantity})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Units > ranking[j].Units
	})
	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// RevenueByDay agrupa los ingresos por día calendario en UTC y los devuelve en
// orden ascendente. Política de zona horaria: siempre UTC, igual que el
// truncamiento de los timestamps de venta.
func RevenueByDay(sales []entity.Sale) []DailyRevenue {
	byDay := make(map[time.Time]decimal.Decimal)
	for _, s := range sales {
		day := truncateToDay(s.Timestamp)
		byDay[day] = byDay[day].Add(s.TotalPrice)
	}

	out := make([]DailyRevenue, 0, len(byDay))
	for day, total := range byDay {
		out = append(out, DailyRevenue{Day: day, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out
}

// FilterByDay devuelve las ventas cuyo timestamp cae en el mismo día calendario
// (UTC) que day, conservando el orden original.
func FilterByDay(sales []entity.Sale, day time.Time) []entity.Sale {
	target := truncateToDay(day)
	out := make([]entity.Sale, 0)
	for _, s := range sales {
		if truncateToDay(s.Timestamp).Equal(target) {
			out = append(out, s)
		}
	}
	return out
}

// truncateToDay baja el instante a la medianoche UTC de su día calendario.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
