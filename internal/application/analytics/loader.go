// Package analytics contiene los casos de uso del dashboard de ventas:
// la carga concurrente de las cuatro fuentes de una tienda, la sesión por tienda
// que recalcula el snapshot y el reporte PDF.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/pos-analytics/internal/domain"
	"github.com/jhoicas/pos-analytics/internal/domain/entity"
	"github.com/jhoicas/pos-analytics/internal/domain/repository"
)

// DatasetLoader carga la foto completa de una tienda.
type DatasetLoader interface {
	Load(ctx context.Context, storeID string) *entity.Dataset
}

// Sources agrupa los cuatro puertos de lectura. Un puerto nil cuenta como fuente caída.
type Sources struct {
	Transactions repository.TransactionRepository
	Sellers      repository.SellerRepository
	Products     repository.ProductRepository
	Debts        repository.DebtRepository
}

// Loader lanza las cuatro lecturas en paralelo y espera a todas (barrera de unión).
// Una fuente caída no aborta la carga: su colección queda vacía y se registra en Failures.
type Loader struct {
	src   Sources
	log   zerolog.Logger
	clock func() time.Time
}

var _ DatasetLoader = (*Loader)(nil)

// NewLoader construye el loader.
func NewLoader(src Sources, log zerolog.Logger) *Loader {
	return &Loader{src: src, log: log, clock: time.Now}
}

// Load nunca devuelve error; el dataset indica qué fuentes fallaron.
func (l *Loader) Load(ctx context.Context, storeID string) *entity.Dataset {
	loadID := uuid.NewString()
	log := l.log.With().Str("store_id", storeID).Str("load_id", loadID).Logger()
	started := l.clock()

	ds := &entity.Dataset{StoreID: storeID}
	var (
		mu sync.Mutex
		g  errgroup.Group
	)

	fail := func(source string, err error) {
		log.Warn().Err(err).Str("source", source).Msg("fuente no disponible, se continúa sin ella")
		mu.Lock()
		ds.Failures = append(ds.Failures, entity.SourceFailure{Source: source, Message: err.Error()})
		mu.Unlock()
	}

	// Cada goroutine escribe solo su propio campo del dataset.
	g.Go(func() error {
		if l.src.Transactions == nil {
			fail(entity.SourceTransactions, domain.ErrSourceUnavailable)
			return nil
		}
		txs, err := l.src.Transactions.ListByStore(ctx, storeID)
		if err != nil {
			fail(entity.SourceTransactions, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err))
			return nil
		}
		ds.Transactions = txs
		return nil
	})
	g.Go(func() error {
		if l.src.Sellers == nil {
			fail(entity.SourceSellers, domain.ErrSourceUnavailable)
			return nil
		}
		sellers, err := l.src.Sellers.ListByStore(ctx, storeID)
		if err != nil {
			fail(entity.SourceSellers, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err))
			return nil
		}
		ds.Sellers = sellers
		return nil
	})
	g.Go(func() error {
		if l.src.Products == nil {
			fail(entity.SourceProducts, domain.ErrSourceUnavailable)
			return nil
		}
		products, err := l.src.Products.ListByStore(ctx, storeID)
		if err != nil {
			fail(entity.SourceProducts, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err))
			return nil
		}
		ds.Products = products
		return nil
	})
	g.Go(func() error {
		if l.src.Debts == nil {
			fail(entity.SourceDebts, domain.ErrSourceUnavailable)
			return nil
		}
		debts, err := l.src.Debts.ListByStore(ctx, storeID)
		if err != nil {
			fail(entity.SourceDebts, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err))
			return nil
		}
		ds.Debts = debts
		return nil
	})
	_ = g.Wait()

	sort.Slice(ds.Failures, func(i, j int) bool { return ds.Failures[i].Source < ds.Failures[j].Source })
	ds.LoadedAt = l.clock()

	log.Debug().
		Int("transactions", len(ds.Transactions)).
		Int("products", len(ds.Products)).
		Int("sellers", len(ds.Sellers)).
		Int("debts", len(ds.Debts)).
		Int("failures", len(ds.Failures)).
		Dur("elapsed", ds.LoadedAt.Sub(started)).
		Msg("dataset cargado")
	return ds
}
