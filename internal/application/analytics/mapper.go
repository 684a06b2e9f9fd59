package analytics

import (
	"github.com/jhoicas/pos-analytics/internal/application/dto"
	domanalytics "github.com/jhoicas/pos-analytics/internal/domain/analytics"
	"github.com/jhoicas/pos-analytics/internal/domain/entity"
	"github.com/jhoicas/pos-analytics/pkg/i18n"
)

// NewSnapshotDTO convierte el snapshot del motor en la respuesta de la API.
// Solo aquí se traducen las claves de respaldo y se redondean los montos.
func NewSnapshotDTO(snap domanalytics.MetricsSnapshot, ds *entity.Dataset, locale i18n.Locale) *dto.DashboardSnapshotDTO {
	out := &dto.DashboardSnapshotDTO{
		Window:      string(snap.Window),
		Lang:        locale.Code,
		GeneratedAt: snap.GeneratedAt,
		Totals: dto.TotalsDTO{
			Revenue:          snap.Totals.Revenue.Round(2),
			Profit:           snap.Totals.Profit.Round(2),
			TransactionCount: snap.Totals.TransactionCount,
			QuantitySold:     snap.Totals.QuantitySold,
		},
		TopProducts: rankedDTO(snap.TopProducts, locale, ""),
		ByCategory:  rankedDTO(snap.ByCategory, locale, domanalytics.DefaultUncategorizedKey),
		BySeller:    rankedDTO(snap.BySeller, locale, domanalytics.DefaultUnknownSellerKey),
		ByDay:       rankedDTO(snap.ByDay, locale, ""),
		Highlights: dto.HighlightsDTO{
			TodayDate:  snap.Highlights.TodayDate,
			TodayTotal: snap.Highlights.TodayTotal.Round(2),
		},
		Inventory: dto.InventoryHealthDTO{
			TotalProducts: snap.Inventory.TotalProducts,
			OutOfStock:    tierDTO(snap.Inventory.OutOfStock),
			LowStock:      tierDTO(snap.Inventory.LowStock),
			Healthy:       tierDTO(snap.Inventory.Healthy),
		},
		Debts: dto.DebtTotalsDTO{
			Clients:   snap.Debts.Clients.Round(2),
			Suppliers: snap.Debts.Suppliers.Round(2),
			Total:     snap.Debts.Total.Round(2),
		},
		RecentActivity: make([]dto.ActivityDTO, 0, len(snap.RecentActivity)),
	}
	if ds != nil {
		out.StoreID = ds.StoreID
		out.DataLoadedAt = ds.LoadedAt
		out.Partial = !ds.Complete()
		out.Failures = failuresDTO(ds.Failures)
	}
	if b := snap.Highlights.BestDay; b != nil {
		out.Highlights.BestDay = &dto.BestDayDTO{
			Date:        b.Date,
			Weekday:     int(b.Weekday),
			WeekdayName: b.WeekdayName,
			Total:       b.Total.Round(2),
		}
	}
	for _, a := range snap.RecentActivity {
		seller := a.SellerName
		if seller == domanalytics.DefaultUnknownSellerKey {
			seller = locale.T(i18n.KeyUnknownUser)
		}
		out.RecentActivity = append(out.RecentActivity, dto.ActivityDTO{
			TransactionID: a.TransactionID,
			ProductName:   a.ProductName,
			SellerName:    seller,
			Quantity:      a.Quantity,
			Total:         a.Total.Round(2),
			CreatedAt:     a.CreatedAt,
		})
	}
	return out
}

// rankedDTO traduce solo la clave de respaldo propia de cada ranking.
func rankedDTO(entries []domanalytics.RankedEntry, locale i18n.Locale, fallbackKey string) []dto.RankedEntryDTO {
	out := make([]dto.RankedEntryDTO, 0, len(entries))
	for _, e := range entries {
		label := e.Key
		if fallbackKey != "" && e.Key == fallbackKey {
			label = locale.T(fallbackKey)
		}
		out = append(out, dto.RankedEntryDTO{Key: e.Key, Label: label, Value: e.Value.Round(2)})
	}
	return out
}

func tierDTO(t domanalytics.TierCount) dto.TierDTO {
	return dto.TierDTO{Count: t.Count, Percent: t.Percent.Round(2)}
}

func failuresDTO(failures []entity.SourceFailure) []dto.SourceFailureDTO {
	if len(failures) == 0 {
		return nil
	}
	out := make([]dto.SourceFailureDTO, 0, len(failures))
	for _, f := range failures {
		out = append(out, dto.SourceFailureDTO{Source: f.Source, Message: f.Message})
	}
	return out
}
