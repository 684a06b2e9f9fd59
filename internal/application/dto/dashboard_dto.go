package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSnapshotDTO respuesta de GET /api/dashboard/snapshot.
// Los montos se redondean a 2 decimales; las etiquetas de respaldo ya vienen traducidas.
type DashboardSnapshotDTO struct {
	StoreID      string    `json:"store_id"`
	Window       string    `json:"window"` // all | today | week | month
	Lang         string    `json:"lang"`
	GeneratedAt  time.Time `json:"generated_at"`
	DataLoadedAt time.Time `json:"data_loaded_at"`

	// Partial es true si alguna fuente falló y las métricas se calcularon sin ella.
	Partial  bool               `json:"partial"`
	Failures []SourceFailureDTO `json:"failures,omitempty"`

	Totals TotalsDTO `json:"totals"`

	TopProducts []RankedEntryDTO `json:"top_products"` // por unidades vendidas
	ByCategory  []RankedEntryDTO `json:"by_category"`  // por ingreso
	BySeller    []RankedEntryDTO `json:"by_seller"`    // por ingreso
	ByDay       []RankedEntryDTO `json:"by_day"`       // por ingreso
	Highlights  HighlightsDTO    `json:"highlights"`

	Inventory      InventoryHealthDTO `json:"inventory"`
	Debts          DebtTotalsDTO      `json:"debts"`
	RecentActivity []ActivityDTO      `json:"recent_activity"`
}

// SourceFailureDTO fuente que no respondió en la última carga.
type SourceFailureDTO struct {
	Source  string `json:"source"`
	Message string `json:"message"`
}

// TotalsDTO tarjetas de resumen.
type TotalsDTO struct {
	Revenue          decimal.Decimal `json:"revenue"`
	Profit           decimal.Decimal `json:"profit"`
	TransactionCount int             `json:"transaction_count"`
	QuantitySold     int             `json:"quantity_sold"`
}

// RankedEntryDTO fila de un ranking. Key es la clave cruda de agrupación y
// Label el texto a mostrar (igual a Key salvo para las claves de respaldo).
type RankedEntryDTO struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// HighlightsDTO bloque "velocidad de ventas".
type HighlightsDTO struct {
	TodayDate  string          `json:"today_date"`
	TodayTotal decimal.Decimal `json:"today_total"`
	BestDay    *BestDayDTO     `json:"best_day,omitempty"`
}

// BestDayDTO día con mayor ingreso.
type BestDayDTO struct {
	Date        string          `json:"date"`
	Weekday     int             `json:"weekday"` // 0 = domingo
	WeekdayName string          `json:"weekday_name"`
	Total       decimal.Decimal `json:"total"`
}

// InventoryHealthDTO niveles de stock del catálogo.
type InventoryHealthDTO struct {
	TotalProducts int     `json:"total_products"`
	OutOfStock    TierDTO `json:"out_of_stock"`
	LowStock      TierDTO `json:"low_stock"`
	Healthy       TierDTO `json:"healthy"`
}

// TierDTO cantidad y porcentaje (2 decimales) de un nivel.
type TierDTO struct {
	Count   int             `json:"count"`
	Percent decimal.Decimal `json:"percent"`
}

// DebtTotalsDTO saldos pendientes.
type DebtTotalsDTO struct {
	Clients   decimal.Decimal `json:"clients"`
	Suppliers decimal.Decimal `json:"suppliers"`
	Total     decimal.Decimal `json:"total"`
}

// ActivityDTO fila de actividad reciente.
type ActivityDTO struct {
	TransactionID string          `json:"transaction_id"`
	ProductName   string          `json:"product_name"`
	SellerName    string          `json:"seller_name"`
	Quantity      int             `json:"quantity"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
}

// RefreshResultDTO respuesta de POST /api/dashboard/refresh.
type RefreshResultDTO struct {
	StoreID      string             `json:"store_id"`
	DataLoadedAt time.Time          `json:"data_loaded_at"`
	Transactions int                `json:"transactions"`
	Products     int                `json:"products"`
	Sellers      int                `json:"sellers"`
	Debts        int                `json:"debts"`
	Partial      bool               `json:"partial"`
	Failures     []SourceFailureDTO `json:"failures,omitempty"`
}
