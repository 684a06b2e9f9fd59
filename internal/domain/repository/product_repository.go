package repository

import (
	"context"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// ProductRepository puerto de lectura del catálogo de productos (DIP).
// Las implementaciones son read-only; el motor solo consume una foto del catálogo.
type ProductRepository interface {
	ListByStore(ctx context.Context, storeID string) ([]entity.ProductRecord, error)
}
