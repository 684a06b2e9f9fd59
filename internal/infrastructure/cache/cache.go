// Package cache implementa ports.DatasetCache: una versión nula y una sobre Redis.
package cache

import (
	"context"
	"time"

	"github.com/jhoicas/pos-analytics/internal/application/ports"
	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

var _ ports.DatasetCache = NoopDatasetCache{}

// NoopDatasetCache cache que nunca guarda nada (REDIS_ADDR vacío).
type NoopDatasetCache struct{}

func (NoopDatasetCache) Get(_ context.Context, _ string) (*entity.Dataset, bool, error) {
	return nil, false, nil
}

func (NoopDatasetCache) Set(_ context.Context, _ *entity.Dataset, _ time.Duration) error {
	return nil
}
