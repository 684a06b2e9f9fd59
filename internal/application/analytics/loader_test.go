package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-analytics/internal/domain"
	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

func TestLoader_CargaLasCuatroFuentes(t *testing.T) {
	ds := sampleDataset("store-1", testNow)
	l := NewLoader(Sources{
		Transactions: fakeTransactions{items: ds.Transactions},
		Sellers:      fakeSellers{items: ds.Sellers},
		Products:     fakeProducts{items: ds.Products},
		Debts:        fakeDebts{items: ds.Debts},
	}, zerolog.Nop())
	l.clock = func() time.Time { return testNow }

	got := l.Load(context.Background(), "store-1")

	require.NotNil(t, got)
	assert.True(t, got.Complete())
	assert.Equal(t, "store-1", got.StoreID)
	assert.Len(t, got.Transactions, 2)
	assert.Len(t, got.Products, 1)
	assert.Len(t, got.Sellers, 1)
	assert.Len(t, got.Debts, 1)
	assert.Equal(t, testNow, got.LoadedAt)
}

// Caso: una fuente caída no aborta la carga; su colección queda vacía.
func TestLoader_FuenteCaidaSeDegrada(t *testing.T) {
	ds := sampleDataset("store-1", testNow)
	l := NewLoader(Sources{
		Transactions: fakeTransactions{items: ds.Transactions},
		Sellers:      fakeSellers{err: errBackend},
		Products:     fakeProducts{items: ds.Products},
		Debts:        nil,
	}, zerolog.Nop())

	got := l.Load(context.Background(), "store-1")

	assert.False(t, got.Complete())
	require.Len(t, got.Failures, 2)
	// ordenadas por fuente
	assert.Equal(t, entity.SourceDebts, got.Failures[0].Source)
	assert.Equal(t, entity.SourceSellers, got.Failures[1].Source)
	assert.Contains(t, got.Failures[1].Message, errBackend.Error())
	assert.Contains(t, got.Failures[1].Message, domain.ErrSourceUnavailable.Error())

	assert.Len(t, got.Transactions, 2)
	assert.Empty(t, got.Sellers)
	assert.Empty(t, got.Debts)
}
