package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-analytics/internal/application/dto"
	"github.com/jhoicas/pos-analytics/pkg/i18n"
)

func sampleSnapshot() *dto.DashboardSnapshotDTO {
	d := decimal.RequireFromString
	return &dto.DashboardSnapshotDTO{
		StoreID:     "store-1",
		Window:      "week",
		GeneratedAt: time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC),
		Totals:      dto.TotalsDTO{Revenue: d("1234.5"), Profit: d("300"), TransactionCount: 3, QuantitySold: 9},
		TopProducts: []dto.RankedEntryDTO{{Key: "Widget", Label: "Widget", Value: d("5")}},
		ByCategory:  []dto.RankedEntryDTO{{Key: "uncategorized", Label: "Non classé", Value: d("20")}},
		Highlights: dto.HighlightsDTO{
			TodayDate: "2024-03-15", TodayTotal: d("20"),
			BestDay: &dto.BestDayDTO{Date: "2024-03-11", Weekday: 1, Total: d("90")},
		},
		Inventory: dto.InventoryHealthDTO{
			TotalProducts: 3,
			OutOfStock:    dto.TierDTO{Count: 1, Percent: d("33.33")},
			LowStock:      dto.TierDTO{Count: 1, Percent: d("33.33")},
			Healthy:       dto.TierDTO{Count: 1, Percent: d("33.33")},
		},
		Debts:          dto.DebtTotalsDTO{Clients: d("60"), Suppliers: d("0"), Total: d("60")},
		RecentActivity: []dto.ActivityDTO{{TransactionID: "t1", ProductName: "Widget", SellerName: "Alice", Quantity: 2, Total: d("20")}},
		Partial:        true,
		Failures:       []dto.SourceFailureDTO{{Source: "debts", Message: "timeout"}},
	}
}

func TestGenerateDashboardPDF(t *testing.T) {
	g := NewMarotoPDFGenerator()
	for _, lang := range []string{"en", "fr", "ar"} {
		t.Run(lang, func(t *testing.T) {
			out, err := g.GenerateDashboardPDF(context.Background(), sampleSnapshot(), i18n.Match(lang))
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
		})
	}
}

// Caso: en árabe las cifras deben salir con dígitos que la fuente helvetica puede dibujar.
func TestNewRenderer_ArabeUsaDigitosLatinos(t *testing.T) {
	snap := sampleSnapshot()
	r := newRenderer(snap, i18n.Match("ar"))

	assert.Equal(t, i18n.English.T(i18n.KeyTitle), r.t.T(i18n.KeyTitle))
	for _, s := range []string{
		r.num.FormatMoney(snap.Totals.Revenue),
		r.num.FormatInt(snap.Totals.QuantitySold),
		r.num.FormatPercent(snap.Inventory.Healthy.Percent),
	} {
		for _, ch := range s {
			assert.Less(t, ch, rune(0x80), "carácter no ASCII %q en %q", ch, s)
		}
	}
	assert.Equal(t, "1,234.50", r.num.FormatMoney(snap.Totals.Revenue))
}

func TestGenerateDashboardPDF_SnapshotNil(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateDashboardPDF(context.Background(), nil, i18n.English)
	assert.Error(t, err)
}

func TestWindowKey(t *testing.T) {
	assert.Equal(t, i18n.KeyToday, windowKey("today"))
	assert.Equal(t, i18n.KeyLast7Days, windowKey("week"))
	assert.Equal(t, i18n.KeyLast30Days, windowKey("month"))
	assert.Equal(t, i18n.KeyAllTime, windowKey("all"))
}
