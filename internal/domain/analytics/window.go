package analytics

import (
	"time"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

const week = 7 * 24 * time.Hour

// WindowStart devuelve el instante de corte de la ventana (inclusivo).
// ok=false significa que la ventana no filtra (WindowAll o un valor desconocido).
//
//   - today: medianoche local de now (zona de now).
//   - week:  now − 7×24h, ventana móvil sin anclar al día.
//   - month: medianoche del mismo día del mes anterior. time.Date normaliza
//     los desbordes (31 de marzo → 2 o 3 de marzo según el año).
func WindowStart(w entity.TimeWindow, now time.Time) (cutoff time.Time, ok bool) {
	loc := now.Location()
	switch w {
	case entity.WindowToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc), true
	case entity.WindowWeek:
		return now.Add(-week), true
	case entity.WindowMonth:
		return time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, loc), true
	default:
		return time.Time{}, false
	}
}

// FilterWindow devuelve las transacciones con CreatedAt >= corte de la ventana.
// No modifica txs; para WindowAll devuelve el mismo slice.
func FilterWindow(txs []entity.TransactionRecord, w entity.TimeWindow, now time.Time) []entity.TransactionRecord {
	cutoff, ok := WindowStart(w, now)
	if !ok {
		return txs
	}
	out := make([]entity.TransactionRecord, 0, len(txs))
	for _, t := range txs {
		if !t.CreatedAt.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}
