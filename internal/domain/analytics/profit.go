package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// CostBasis costo unitario que se usa para la utilidad de una venta:
// el costo registrado en la transacción, o el costo vigente del catálogo si la
// transacción no lo trae (nil o cero). Producto inexistente → costo cero.
func CostBasis(tx entity.TransactionRecord, catalog Catalog) decimal.Decimal {
	if tx.CostPrice != nil && !tx.CostPrice.IsZero() {
		return *tx.CostPrice
	}
	return catalog.Cost(tx.Barcode)
}

// ResolveProfit decide la utilidad de una venta.
//
// Se recalcula como total − costo × cantidad cuando:
//  1. la transacción no trae utilidad precalculada,
//  2. la utilidad precalculada es igual al total (señal de que falló la búsqueda de costo), o
//  3. el costo base es positivo.
//
// En cualquier otro caso se respeta la utilidad almacenada. Por la regla 3 un
// costo positivo pisa la utilidad histórica aunque fuera correcta.
func ResolveProfit(tx entity.TransactionRecord, catalog Catalog) decimal.Decimal {
	cost := CostBasis(tx, catalog)
	if tx.Profit == nil || tx.Profit.Equal(tx.Total) || cost.IsPositive() {
		return tx.Total.Sub(cost.Mul(decimal.NewFromInt(int64(tx.Quantity))))
	}
	return *tx.Profit
}
