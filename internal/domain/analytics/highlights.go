package analytics

import (
	"time"

	"github.com/shopspring/decimal"
)

// BestDay día con mayor ingreso de la ventana.
type BestDay struct {
	Date        string // yyyy-mm-dd
	Weekday     time.Weekday
	WeekdayName string // de Labels.WeekdayNames; vacío si no hay tabla
	Total       decimal.Decimal
}

// Highlights bloque "velocidad de ventas": hoy siempre, mejor día si existe.
type Highlights struct {
	TodayDate  string
	TodayTotal decimal.Decimal
	BestDay    *BestDay
}

// DailyHighlights calcula el total de hoy (fecha UTC de now) y el mejor día.
// Sin días con ventas BestDay es nil y TodayTotal es cero.
func DailyHighlights(byDay *Tally, now time.Time, labels Labels) Highlights {
	today := now.UTC().Format(dayLayout)
	h := Highlights{TodayDate: today, TodayTotal: decimal.Zero}
	if v, ok := byDay.Get(today); ok {
		h.TodayTotal = v
	}

	top := TopN(byDay, 1)
	if len(top) == 0 {
		return h
	}
	best := &BestDay{Date: top[0].Key, Total: top[0].Value}
	if d, err := time.Parse(dayLayout, best.Date); err == nil {
		best.Weekday = d.Weekday()
		best.WeekdayName = labels.WeekdayName(best.Weekday)
	}
	h.BestDay = best
	return h
}
