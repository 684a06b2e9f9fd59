package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultTopN número de filas de cada ranking del dashboard.
const DefaultTopN = 5

// RankedEntry fila de un ranking.
type RankedEntry struct {
	Key   string
	Value decimal.Decimal
}

// TopN ordena el Tally por valor descendente y lo trunca a limit filas.
// El orden es estable: a igual valor se respeta el orden de primera aparición.
// limit <= 0 devuelve todas las filas ordenadas.
func TopN(t *Tally, limit int) []RankedEntry {
	entries := t.Entries()
	ranked := make([]RankedEntry, len(entries))
	for i, e := range entries {
		ranked[i] = RankedEntry{Key: e.Key, Value: e.Value}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value.GreaterThan(ranked[j].Value)
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
