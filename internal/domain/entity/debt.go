package entity

import "github.com/shopspring/decimal"

// Tipos de contraparte de una deuda.
const (
	PartyTypeClient   = "client"   // el cliente le debe a la tienda
	PartyTypeSupplier = "supplier" // la tienda le debe al proveedor
)

// DebtRecord representa una deuda abierta con un cliente o proveedor.
type DebtRecord struct {
	PartyName  string
	PartyType  string
	Amount     decimal.Decimal
	PaidAmount decimal.Decimal
}

// Remaining devuelve el saldo pendiente (amount - paidAmount).
// Puede ser negativo si hubo sobrepago; no se recorta.
func (d DebtRecord) Remaining() decimal.Decimal {
	return d.Amount.Sub(d.PaidAmount)
}
