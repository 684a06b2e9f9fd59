package repository

import (
	"context"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// DebtRepository puerto de lectura de deudas con clientes y proveedores.
type DebtRepository interface {
	ListByStore(ctx context.Context, storeID string) ([]entity.DebtRecord, error)
}
