package ports

import (
	"context"
	"time"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// DatasetCache puerto de salida para compartir datasets ya cargados entre instancias.
// Un miss devuelve (nil, false, nil). Los errores del cache nunca bloquean una carga.
type DatasetCache interface {
	Get(ctx context.Context, storeID string) (*entity.Dataset, bool, error)
	Set(ctx context.Context, ds *entity.Dataset, ttl time.Duration) error
}
