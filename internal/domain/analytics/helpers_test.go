package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

// assertDec compara montos por valor (decimal.Decimal no admite assert.Equal).
func assertDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, d(want).Equal(got), append([]interface{}{"esperado %s, obtenido %s", want, got.String()}, msgAndArgs...)...)
}

func sale(barcode string, qty int, total, seller string, at time.Time) entity.TransactionRecord {
	return entity.TransactionRecord{
		ID:              barcode + "-" + at.Format(time.RFC3339Nano),
		Barcode:         barcode,
		Quantity:        qty,
		TransactionType: entity.TransactionTypeSale,
		Total:           d(total),
		SellerID:        seller,
		CreatedAt:       at,
	}
}

func restock(barcode string, qty int, total string, at time.Time) entity.TransactionRecord {
	tx := sale(barcode, qty, total, "", at)
	tx.TransactionType = entity.TransactionTypeRestock
	return tx
}

func keys(entries []RankedEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Key
	}
	return out
}

var fixedNow = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)
