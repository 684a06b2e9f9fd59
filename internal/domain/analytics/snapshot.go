package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// Input foto inmutable de las cuatro colecciones más los parámetros de la vista.
type Input struct {
	Transactions []entity.TransactionRecord
	Products     []entity.ProductRecord
	Sellers      []entity.SellerRecord
	Debts        []entity.DebtRecord

	Window entity.TimeWindow
	Now    time.Time // inyectado; el motor nunca consulta el reloj
	Labels Labels
	TopN   int // 0 → DefaultTopN
}

// Totals tarjetas de resumen del dashboard.
type Totals struct {
	Revenue          decimal.Decimal
	Profit           decimal.Decimal
	TransactionCount int
	QuantitySold     int
}

// MetricsSnapshot única salida del motor. Es un valor: se crea en cada recálculo y no se modifica.
type MetricsSnapshot struct {
	Window      entity.TimeWindow
	GeneratedAt time.Time

	Totals Totals

	TopProducts []RankedEntry // por unidades
	ByCategory  []RankedEntry // por ingreso
	BySeller    []RankedEntry // por ingreso
	ByDay       []RankedEntry // por ingreso
	Highlights  Highlights

	Inventory      InventoryHealth
	Debts          DebtTotals
	RecentActivity []ActivityEntry
}

// ComputeSnapshot ejecuta el pipeline completo:
// joins → filtro de ventana → agregación → rankings → inventario → deudas.
// Es total sobre su dominio: colecciones vacías producen ceros y listas vacías.
func ComputeSnapshot(in Input) MetricsSnapshot {
	labels := in.Labels.normalized()
	limit := in.TopN
	if limit <= 0 {
		limit = DefaultTopN
	}

	catalog := BuildCatalog(in.Products)
	sellers := BuildSellerDirectory(in.Sellers)
	filtered := FilterWindow(in.Transactions, in.Window, in.Now)
	agg := Aggregate(filtered, catalog, sellers, labels)

	return MetricsSnapshot{
		Window:      in.Window,
		GeneratedAt: in.Now,
		Totals: Totals{
			Revenue:          agg.Revenue,
			Profit:           agg.Profit,
			TransactionCount: agg.TransactionCount,
			QuantitySold:     agg.QuantitySold,
		},
		TopProducts:    TopN(agg.ProductQuantity, limit),
		ByCategory:     TopN(agg.ByCategory, limit),
		BySeller:       TopN(agg.BySeller, limit),
		ByDay:          TopN(agg.ByDay, limit),
		Highlights:     DailyHighlights(agg.ByDay, in.Now, labels),
		Inventory:      ClassifyInventory(in.Products),
		Debts:          TotalDebts(in.Debts),
		RecentActivity: RecentActivity(filtered, catalog, sellers, labels, RecentActivityLimit),
	}
}
