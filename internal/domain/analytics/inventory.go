package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// LowStockThreshold stock máximo (inclusivo) considerado "stock bajo".
const LowStockThreshold = 10

var hundred = decimal.NewFromInt(100)

// TierCount cantidad de productos de un nivel y su porcentaje sobre el catálogo.
type TierCount struct {
	Count   int
	Percent decimal.Decimal
}

// InventoryHealth niveles de salud del catálogo vigente.
type InventoryHealth struct {
	TotalProducts int
	OutOfStock    TierCount // stock == 0
	LowStock      TierCount // 0 < stock <= 10
	Healthy       TierCount // el resto
}

// ClassifyInventory clasifica el catálogo (no las transacciones) en niveles de stock.
// Healthy se obtiene por diferencia con el total.
// Catálogo vacío: agotado 0%, bajo 0%, saludable 100% (fallback asimétrico).
func ClassifyInventory(products []entity.ProductRecord) InventoryHealth {
	var out, low int
	for _, p := range products {
		switch {
		case p.Stock == 0:
			out++
		case p.Stock > 0 && p.Stock <= LowStockThreshold:
			low++
		}
	}
	total := len(products)
	healthy := total - out - low

	if total == 0 {
		return InventoryHealth{
			OutOfStock: TierCount{Percent: decimal.Zero},
			LowStock:   TierCount{Percent: decimal.Zero},
			Healthy:    TierCount{Percent: hundred},
		}
	}

	totalDec := decimal.NewFromInt(int64(total))
	pct := func(n int) decimal.Decimal {
		return decimal.NewFromInt(int64(n)).Div(totalDec).Mul(hundred)
	}
	return InventoryHealth{
		TotalProducts: total,
		OutOfStock:    TierCount{Count: out, Percent: pct(out)},
		LowStock:      TierCount{Count: low, Percent: pct(low)},
		Healthy:       TierCount{Count: healthy, Percent: pct(healthy)},
	}
}
