package repository

import (
	"context"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// TransactionRepository puerto de lectura de las transacciones de una tienda.
type TransactionRepository interface {
	ListByStore(ctx context.Context, storeID string) ([]entity.TransactionRecord, error)
}
