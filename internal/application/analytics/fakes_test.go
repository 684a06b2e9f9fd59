package analytics

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de puertos
// ──────────────────────────────────────────────────────────────────────────────

var errBackend = errors.New("backend caído")

type fakeTransactions struct {
	items []entity.TransactionRecord
	err   error
}

func (f fakeTransactions) ListByStore(_ context.Context, _ string) ([]entity.TransactionRecord, error) {
	return f.items, f.err
}

type fakeProducts struct {
	items []entity.ProductRecord
	err   error
}

func (f fakeProducts) ListByStore(_ context.Context, _ string) ([]entity.ProductRecord, error) {
	return f.items, f.err
}

type fakeSellers struct {
	items []entity.SellerRecord
	err   error
}

func (f fakeSellers) ListByStore(_ context.Context, _ string) ([]entity.SellerRecord, error) {
	return f.items, f.err
}

type fakeDebts struct {
	items []entity.DebtRecord
	err   error
}

func (f fakeDebts) ListByStore(_ context.Context, _ string) ([]entity.DebtRecord, error) {
	return f.items, f.err
}

// countingLoader devuelve siempre el mismo dataset y cuenta las llamadas.
type countingLoader struct {
	calls atomic.Int32
	build func(storeID string) *entity.Dataset
}

func (l *countingLoader) Load(_ context.Context, storeID string) *entity.Dataset {
	l.calls.Add(1)
	return l.build(storeID)
}

// memoryCache implementación en memoria de ports.DatasetCache.
type memoryCache struct {
	mu    sync.Mutex
	items map[string]*entity.Dataset
	sets  int
	err   error
}

func newMemoryCache() *memoryCache { return &memoryCache{items: map[string]*entity.Dataset{}} }

func (c *memoryCache) Get(_ context.Context, storeID string) (*entity.Dataset, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, false, c.err
	}
	ds, ok := c.items[storeID]
	return ds, ok, nil
}

func (c *memoryCache) Set(_ context.Context, ds *entity.Dataset, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.items[ds.StoreID] = ds
	return nil
}

// fakeClock reloj manual.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

var testNow = time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleDataset(storeID string, loadedAt time.Time) *entity.Dataset {
	return &entity.Dataset{
		StoreID: storeID,
		Transactions: []entity.TransactionRecord{
			{ID: "t1", Barcode: "A", Quantity: 2, TransactionType: entity.TransactionTypeSale, Total: dec("20"), SellerID: "s1", CreatedAt: loadedAt.Add(-time.Hour)},
			{ID: "t2", Barcode: "X", Quantity: 1, TransactionType: entity.TransactionTypeSale, Total: dec("5"), SellerID: "ghost", CreatedAt: loadedAt.Add(-48 * time.Hour)},
		},
		Products: []entity.ProductRecord{{Barcode: "A", Name: "Widget", Category: "Tools", Stock: 3, CostPrice: dec("5")}},
		Sellers:  []entity.SellerRecord{{ID: "s1", Username: "Alice"}},
		Debts:    []entity.DebtRecord{{PartyType: entity.PartyTypeClient, Amount: dec("100"), PaidAmount: dec("40")}},
		LoadedAt: loadedAt,
	}
}

// gatedLoader bloquea cada carga hasta que se cierre release (o se cancele su contexto).
type gatedLoader struct {
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}

	mu        sync.Mutex
	cancelled bool
}

func newGatedLoader() *gatedLoader {
	return &gatedLoader{started: make(chan struct{}, 8), release: make(chan struct{})}
}

func (l *gatedLoader) Load(ctx context.Context, storeID string) *entity.Dataset {
	l.calls.Add(1)
	l.started <- struct{}{}
	select {
	case <-l.release:
	case <-ctx.Done():
		l.mu.Lock()
		l.cancelled = true
		l.mu.Unlock()
	}
	return sampleDataset(storeID, testNow)
}

func (l *gatedLoader) wasCancelled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cancelled
}
