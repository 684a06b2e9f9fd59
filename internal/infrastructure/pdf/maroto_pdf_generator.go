// Package pdf implementa el reporte PDF del dashboard de ventas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + tienda     │  Ventana + fecha de cálculo   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Ingresos | Utilidad | Órdenes | Unidades           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RANKINGS: Top productos / Categorías / Vendedores           │
//	│  VELOCIDAD: Hoy + Mejor día                                  │
//	│  INVENTARIO: Agotado | Stock bajo | En stock                 │
//	│  DEUDAS: Clientes | Proveedores                              │
//	│  ACTIVIDAD RECIENTE                                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/pos-analytics/internal/application/dto"
	"github.com/jhoicas/pos-analytics/internal/application/ports"
	"github.com/jhoicas/pos-analytics/pkg/i18n"
)

var _ ports.SnapshotPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.SnapshotPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateDashboardPDF genera el PDF y devuelve sus bytes.
// Las fuentes base de PDF no tienen glifos árabes: para idiomas RTL los títulos
// salen en inglés y los números conservan el formato del idioma pedido.
func (g *MarotoPDFGenerator) GenerateDashboardPDF(
	_ context.Context,
	snap *dto.DashboardSnapshotDTO,
	locale i18n.Locale,
) ([]byte, error) {
	if snap == nil {
		return nil, fmt.Errorf("pdf: snapshot vacío")
	}
	r := newRenderer(snap, locale)
	titles := r.t

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(titles.T(i18n.KeyTitle), true).
		WithAuthor(snap.StoreID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(r.headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(r.totalsRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(r.rankingRows(i18n.KeyTopProducts, snap.TopProducts, false)...)
	m.AddRows(r.rankingRows(i18n.KeySalesByCategory, snap.ByCategory, true)...)
	m.AddRows(r.rankingRows(i18n.KeySalesByUser, snap.BySeller, true)...)
	m.AddRows(r.highlightsRows()...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(r.inventoryRows()...)
	m.AddRows(r.debtsRows()...)
	m.AddRows(r.activityRows()...)

	if snap.Partial {
		m.AddRows(line.NewRow(3))
		m.AddRows(r.partialRow())
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// renderer separa el idioma de los títulos (t) del de los números (num).
type renderer struct {
	snap *dto.DashboardSnapshotDTO
	num  i18n.Locale
	t    i18n.Locale
}

// newRenderer en idiomas RTL escribe los títulos en inglés; los números siempre
// salen con dígitos latinos (ver i18n.Locale.FormatMoney).
func newRenderer(snap *dto.DashboardSnapshotDTO, locale i18n.Locale) renderer {
	titles := locale
	if locale.RTL() {
		titles = i18n.English
	}
	return renderer{snap: snap, num: locale, t: titles}
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (r renderer) headerRow() core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(r.t.T(i18n.KeyTitle), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(r.snap.StoreID, props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(r.t.T(windowKey(r.snap.Window)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(r.snap.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func (r renderer) totalsRow() core.Row {
	card := func(key, value string) core.Col {
		return col.New(3).Add(
			text.New(r.t.T(key), props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 6}),
		)
	}
	return row.New(16).Add(
		card(i18n.KeyTotalSales, r.num.FormatMoney(r.snap.Totals.Revenue)),
		card(i18n.KeyPureProfit, r.num.FormatMoney(r.snap.Totals.Profit)),
		card(i18n.KeyTransactionCount, r.num.FormatInt(r.snap.Totals.TransactionCount)),
		card(i18n.KeyItemsSold, r.num.FormatInt(r.snap.Totals.QuantitySold)),
	)
}

// rankingRows una tabla de dos columnas; money decide si el valor es un monto o unidades.
func (r renderer) rankingRows(titleKey string, entries []dto.RankedEntryDTO, money bool) []core.Row {
	rows := []core.Row{sectionTitle(r.t.T(titleKey))}
	if len(entries) == 0 {
		return append(rows, r.noDataRow())
	}
	for i, e := range entries {
		value := r.num.FormatInt(int(e.Value.IntPart()))
		if money {
			value = r.num.FormatMoney(e.Value)
		}
		rows = append(rows, row.New(6).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d.", i+1), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(8).Add(text.New(e.Label, props.Text{Size: 8, Top: 1, Left: 2})),
			col.New(3).Add(text.New(value, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func (r renderer) highlightsRows() []core.Row {
	h := r.snap.Highlights
	rows := []core.Row{
		sectionTitle(r.t.T(i18n.KeyDailyHighlights)),
		r.labelValueRow(r.t.T(i18n.KeyToday)+" ("+h.TodayDate+")", r.num.FormatMoney(h.TodayTotal)),
	}
	if h.BestDay != nil {
		day := r.t.WeekdayNames()[h.BestDay.Weekday%7]
		rows = append(rows, r.labelValueRow(
			fmt.Sprintf("%s: %s %s", r.t.T(i18n.KeyBestDay), day, h.BestDay.Date),
			r.num.FormatMoney(h.BestDay.Total),
		))
	}
	return rows
}

func (r renderer) inventoryRows() []core.Row {
	inv := r.snap.Inventory
	tier := func(key string, t dto.TierDTO, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(r.t.T(key), props.Text{Size: 8, Align: align.Center, Color: c, Top: 1}),
			text.New(fmt.Sprintf("%s (%s)", r.num.FormatInt(t.Count), r.num.FormatPercent(t.Percent)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Center, Top: 6,
			}),
		)
	}
	return []core.Row{
		sectionTitle(r.t.T(i18n.KeyInventoryHealth)),
		row.New(14).Add(
			tier(i18n.KeyOutOfStock, inv.OutOfStock, colorDanger),
			tier(i18n.KeyLowStock, inv.LowStock, colorGray),
			tier(i18n.KeyStock, inv.Healthy, colorPrimary),
		),
	}
}

func (r renderer) debtsRows() []core.Row {
	return []core.Row{
		row.New(4),
		r.labelValueRow(r.t.T(i18n.KeyClientDebts), r.num.FormatMoney(r.snap.Debts.Clients)),
		r.labelValueRow(r.t.T(i18n.KeySupplierDebts), r.num.FormatMoney(r.snap.Debts.Suppliers)),
	}
}

func (r renderer) activityRows() []core.Row {
	rows := []core.Row{sectionTitle(r.t.T(i18n.KeyRecentActivity))}
	if len(r.snap.RecentActivity) == 0 {
		return append(rows, r.noDataRow())
	}
	for _, a := range r.snap.RecentActivity {
		rows = append(rows, row.New(6).Add(
			col.New(3).Add(text.New(a.CreatedAt.Format("02/01/2006 15:04"), props.Text{Size: 7.5, Top: 1, Color: colorGray})),
			col.New(4).Add(text.New(a.ProductName, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(a.SellerName, props.Text{Size: 8, Top: 1})),
			col.New(1).Add(text.New(r.num.FormatInt(a.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(r.num.FormatMoney(a.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return rows
}

func (r renderer) partialRow() core.Row {
	msg := r.t.T(i18n.KeyPartialData)
	for _, f := range r.snap.Failures {
		msg += " " + f.Source
	}
	return row.New(6).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 7.5, Color: colorDanger, Top: 1}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func sectionTitle(s string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 3}),
	))
}

func (r renderer) labelValueRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 8, Top: 1})),
		col.New(4).Add(text.New(value, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1})),
	)
}

func (r renderer) noDataRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New(r.t.T(i18n.KeyNoData), props.Text{Size: 8, Color: colorGray, Top: 1}),
	))
}

// windowKey clave de texto de cada ventana.
func windowKey(window string) string {
	switch window {
	case "today":
		return i18n.KeyToday
	case "week":
		return i18n.KeyLast7Days
	case "month":
		return i18n.KeyLast30Days
	default:
		return i18n.KeyAllTime
	}
}
