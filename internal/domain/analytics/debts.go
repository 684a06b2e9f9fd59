package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// DebtTotals saldos pendientes por tipo de contraparte.
type DebtTotals struct {
	Clients   decimal.Decimal
	Suppliers decimal.Decimal
	Total     decimal.Decimal
}

// TotalDebts suma remaining = amount − paidAmount de todas las deudas, sin filtro de fechas.
// Todo lo que no es "client" se acumula como proveedor. Los saldos negativos se conservan.
func TotalDebts(debts []entity.DebtRecord) DebtTotals {
	totals := DebtTotals{Clients: decimal.Zero, Suppliers: decimal.Zero, Total: decimal.Zero}
	for _, d := range debts {
		remaining := d.Remaining()
		if d.PartyType == entity.PartyTypeClient {
			totals.Clients = totals.Clients.Add(remaining)
		} else {
			totals.Suppliers = totals.Suppliers.Add(remaining)
		}
		totals.Total = totals.Total.Add(remaining)
	}
	return totals
}
