package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// dayLayout clave de agrupación por día (fecha UTC de CreatedAt).
const dayLayout = "2006-01-02"

// Aggregates acumulados de las ventas de una ventana.
type Aggregates struct {
	Revenue          decimal.Decimal
	Profit           decimal.Decimal
	TransactionCount int // solo registros de venta
	QuantitySold     int

	ByCategory      *Tally // categoría → ingreso
	BySeller        *Tally // vendedor → ingreso
	ByDay           *Tally // yyyy-mm-dd (UTC) → ingreso
	ProductQuantity *Tally // nombre del producto → unidades
}

// Aggregate recorre una sola vez las transacciones y acumula totales y agrupaciones.
// Los registros que no son de venta (restock) se ignoran por completo.
func Aggregate(txs []entity.TransactionRecord, catalog Catalog, sellers SellerDirectory, labels Labels) Aggregates {
	labels = labels.normalized()
	agg := Aggregates{
		Revenue:         decimal.Zero,
		Profit:          decimal.Zero,
		ByCategory:      NewTally(),
		BySeller:        NewTally(),
		ByDay:           NewTally(),
		ProductQuantity: NewTally(),
	}

	for _, tx := range txs {
		if !tx.IsSale() {
			continue
		}
		agg.Revenue = agg.Revenue.Add(tx.Total)
		agg.Profit = agg.Profit.Add(ResolveProfit(tx, catalog))
		agg.TransactionCount++
		agg.QuantitySold += tx.Quantity

		agg.ByCategory.Add(catalog.CategoryOf(tx.Barcode, labels.Uncategorized), tx.Total)
		agg.BySeller.Add(sellers.NameOf(tx.SellerID, labels.UnknownSeller), tx.Total)
		agg.ByDay.Add(DayKey(tx), tx.Total)
		agg.ProductQuantity.Add(catalog.NameOf(tx.Barcode), decimal.NewFromInt(int64(tx.Quantity)))
	}
	return agg
}

// DayKey fecha calendario UTC de la transacción.
func DayKey(tx entity.TransactionRecord) string {
	return tx.CreatedAt.UTC().Format(dayLayout)
}
