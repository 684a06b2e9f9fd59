package repository

import (
	"context"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// SellerRepository puerto de lectura del directorio de vendedores de la tienda.
type SellerRepository interface {
	ListByStore(ctx context.Context, storeID string) ([]entity.SellerRecord, error)
}
