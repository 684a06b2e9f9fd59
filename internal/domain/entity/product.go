package entity

import "github.com/shopspring/decimal"

// ProductRecord es la foto del catálogo de productos de una tienda.
// CostPrice es el costo vigente del catálogo y puede diferir del costo al momento de la venta.
type ProductRecord struct {
	Barcode   string // clave de unión con TransactionRecord.Barcode
	Name      string
	Category  string
	Stock     int
	CostPrice decimal.Decimal
	Price     decimal.Decimal
}
