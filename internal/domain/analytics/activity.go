package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// RecentActivityLimit filas de la tabla de actividad reciente.
const RecentActivityLimit = 7

// ActivityEntry venta de la tabla de actividad reciente.
type ActivityEntry struct {
	TransactionID string
	ProductName   string
	SellerName    string
	Quantity      int
	Total         decimal.Decimal
	CreatedAt     time.Time
}

// RecentActivity primeras limit ventas en el orden en que las entrega la fuente.
func RecentActivity(txs []entity.TransactionRecord, catalog Catalog, sellers SellerDirectory, labels Labels, limit int) []ActivityEntry {
	labels = labels.normalized()
	out := make([]ActivityEntry, 0, limit)
	for _, tx := range txs {
		if len(out) >= limit {
			break
		}
		if !tx.IsSale() {
			continue
		}
		out = append(out, ActivityEntry{
			TransactionID: tx.ID,
			ProductName:   catalog.NameOf(tx.Barcode),
			SellerName:    sellers.NameOf(tx.SellerID, labels.UnknownSeller),
			Quantity:      tx.Quantity,
			Total:         tx.Total,
			CreatedAt:     tx.CreatedAt,
		})
	}
	return out
}
