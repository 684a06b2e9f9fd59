package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción registrados por el punto de venta.
const (
	TransactionTypeSale    = "sale"    // venta al cliente
	TransactionTypeRestock = "restock" // reposición de inventario
)

// TransactionRecord representa una transacción tal como la entrega el backend de la tienda.
// Es de solo lectura para el motor de analítica; nunca se modifica después de leerla.
type TransactionRecord struct {
	ID              string
	Barcode         string // clave del producto, única dentro de una tienda
	Quantity        int
	TransactionType string
	Total           decimal.Decimal  // ingreso de la venta
	Price           decimal.Decimal  // precio unitario
	CostPrice       *decimal.Decimal // costo unitario al momento de la venta (opcional)
	Profit          *decimal.Decimal // utilidad precalculada por el backend (opcional)
	SellerID        string
	CreatedAt       time.Time
}

// IsSale indica si la transacción cuenta para las métricas de ventas.
func (t TransactionRecord) IsSale() bool {
	return t.TransactionType == TransactionTypeSale
}
