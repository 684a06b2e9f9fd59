package entity

import "time"

// Fuentes de datos de una tienda.
const (
	SourceTransactions = "transactions"
	SourceSellers      = "sellers"
	SourceProducts     = "products"
	SourceDebts        = "debts"
)

// SourceFailure fuente que no se pudo leer durante una carga.
type SourceFailure struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// Dataset foto de las cuatro colecciones de una tienda.
// Se construye una vez por carga y después solo se lee.
type Dataset struct {
	StoreID      string              `json:"store_id"`
	Transactions []TransactionRecord `json:"transactions"`
	Products     []ProductRecord     `json:"products"`
	Sellers      []SellerRecord      `json:"sellers"`
	Debts        []DebtRecord        `json:"debts"`
	LoadedAt     time.Time           `json:"loaded_at"`
	Failures     []SourceFailure     `json:"failures,omitempty"`
}

// Complete indica si las cuatro fuentes respondieron.
func (d *Dataset) Complete() bool {
	return d != nil && len(d.Failures) == 0
}

// Age tiempo transcurrido desde la carga.
func (d *Dataset) Age(now time.Time) time.Duration {
	return now.Sub(d.LoadedAt)
}
