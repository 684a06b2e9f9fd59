package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
	"github.com/jhoicas/pos-analytics/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo lectura de la tabla transactions.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// ListByStore devuelve las transacciones de la tienda, más recientes primero
// (mismo orden que entrega el backend REST).
func (r *TransactionRepo) ListByStore(ctx context.Context, storeID string) ([]entity.TransactionRecord, error) {
	const query = `
	SELECT id::TEXT, barcode, quantity, transaction_type,
	       COALESCE(total, 0), COALESCE(price, 0), cost_price, profit,
	       COALESCE(seller_id::TEXT, ''), created_at
	FROM transactions
	WHERE store_id = $1
	ORDER BY created_at DESC, id`

	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	txs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.TransactionRecord, error) {
		var (
			t          entity.TransactionRecord
			cost, prof *decimal.Decimal
			createdAt  *time.Time
		)
		if err := row.Scan(
			&t.ID, &t.Barcode, &t.Quantity, &t.TransactionType,
			&t.Total, &t.Price, &cost, &prof,
			&t.SellerID, &createdAt,
		); err != nil {
			return t, err
		}
		t.CostPrice, t.Profit = cost, prof
		if createdAt != nil {
			t.CreatedAt = *createdAt
		}
		return t, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan transactions: %w", err)
	}
	return txs, nil
}
