package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

func TestNoopDatasetCache(t *testing.T) {
	var c NoopDatasetCache
	require.NoError(t, c.Set(context.Background(), &entity.Dataset{StoreID: "s"}, time.Minute))
	ds, ok, err := c.Get(context.Background(), "s")
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, ds)
}

func TestDatasetKey(t *testing.T) {
	assert.Equal(t, "pos-analytics:dataset:store-1", datasetKey("store-1"))
}

// El dataset debe sobrevivir al JSON que se guarda en Redis, incluidos los opcionales.
func TestDataset_JSONConservaOpcionales(t *testing.T) {
	cost := decimal.RequireFromString("5.25")
	in := entity.Dataset{
		StoreID: "s",
		Transactions: []entity.TransactionRecord{
			{ID: "t1", Barcode: "A", Quantity: 2, TransactionType: entity.TransactionTypeSale, Total: decimal.RequireFromString("20"), CostPrice: &cost},
		},
		LoadedAt: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC),
	}
	payload, err := json.Marshal(in)
	require.NoError(t, err)

	var out entity.Dataset
	require.NoError(t, json.Unmarshal(payload, &out))
	require.Len(t, out.Transactions, 1)
	require.NotNil(t, out.Transactions[0].CostPrice)
	assert.True(t, cost.Equal(*out.Transactions[0].CostPrice))
	assert.Nil(t, out.Transactions[0].Profit)
	assert.True(t, out.Transactions[0].Total.Equal(decimal.RequireFromString("20")))
	assert.True(t, in.LoadedAt.Equal(out.LoadedAt))
}
