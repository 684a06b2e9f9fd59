package analytics

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/pos-analytics/internal/domain"
	domanalytics "github.com/jhoicas/pos-analytics/internal/domain/analytics"
	"github.com/jhoicas/pos-analytics/internal/domain/entity"
)

// loadKey clave única de singleflight: una sesión tiene a lo sumo una carga compartida.
const loadKey = "dataset"

// Dashboard sesión de una tienda: guarda el último dataset cargado y recalcula
// snapshots sobre él sin hacer I/O.
//
// Las lecturas normales se unen a la carga en curso. Solo una carga forzada
// reemplaza a la anterior: la cancela, y quienes esperaban aquélla pasan a
// esperar la nueva. Un resultado cuya generación ya no es la vigente se descarta.
type Dashboard struct {
	storeID string
	loader  DatasetLoader

	current atomic.Pointer[entity.Dataset]
	flight  singleflight.Group

	mu     sync.Mutex // protege gen, cancel y los Store de current
	gen    uint64
	cancel context.CancelFunc
}

// NewDashboard crea la sesión vacía de una tienda.
func NewDashboard(storeID string, loader DatasetLoader) *Dashboard {
	return &Dashboard{storeID: storeID, loader: loader}
}

// StoreID tienda de la sesión.
func (d *Dashboard) StoreID() string { return d.storeID }

// Dataset último dataset instalado, o nil si aún no hay datos.
func (d *Dashboard) Dataset() *entity.Dataset { return d.current.Load() }

// Load devuelve el resultado de la carga en curso o lanza una nueva si no hay ninguna.
// Con force=true siempre lanza una carga nueva que reemplaza a la que esté en curso.
//
// La carga corre desacoplada de la cancelación de ctx; si ctx termina, solo este
// llamador deja de esperar.
func (d *Dashboard) Load(ctx context.Context, force bool) (*entity.Dataset, error) {
	if force {
		d.flight.Forget(loadKey)
	}
	shared := context.WithoutCancel(ctx)
	for {
		ch := d.flight.DoChan(loadKey, func() (interface{}, error) {
			return d.refresh(shared)
		})
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case res := <-ch:
			if res.Err == nil {
				return res.Val.(*entity.Dataset), nil
			}
			if !errors.Is(res.Err, domain.ErrSuperseded) {
				return nil, res.Err
			}
			// La carga fue reemplazada: esperar la que la reemplazó.
		}
	}
}

// Refresh fuerza una carga nueva de las cuatro fuentes.
func (d *Dashboard) Refresh(ctx context.Context) (*entity.Dataset, error) {
	return d.Load(ctx, true)
}

// Install instala ds (por ejemplo, uno leído del cache) si es más reciente que el
// actual. No cancela cargas en curso: cuando terminen, su dataset será más nuevo.
func (d *Dashboard) Install(ds *entity.Dataset) bool {
	if ds == nil {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if cur := d.current.Load(); cur != nil && !ds.LoadedAt.After(cur.LoadedAt) {
		return false
	}
	d.current.Store(ds)
	return true
}

// Snapshot recalcula las métricas sobre el dataset en memoria.
// ok=false si la sesión todavía no tiene datos.
func (d *Dashboard) Snapshot(window entity.TimeWindow, now time.Time, labels domanalytics.Labels, topN int) (snap domanalytics.MetricsSnapshot, ds *entity.Dataset, ok bool) {
	ds = d.current.Load()
	if ds == nil {
		return domanalytics.MetricsSnapshot{}, nil, false
	}
	return domanalytics.ComputeSnapshot(domanalytics.Input{
		Transactions: ds.Transactions,
		Products:     ds.Products,
		Sellers:      ds.Sellers,
		Debts:        ds.Debts,
		Window:       window,
		Now:          now,
		Labels:       labels,
		TopN:         topN,
	}), ds, true
}

func (d *Dashboard) refresh(ctx context.Context) (*entity.Dataset, error) {
	ctx, gen := d.begin(ctx)
	ds := d.loader.Load(ctx, d.storeID)
	if !d.commit(gen, ds) {
		return nil, domain.ErrSuperseded
	}
	return ds, nil
}

func (d *Dashboard) begin(parent context.Context) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(parent)
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
	}
	d.gen++
	d.cancel = cancel
	return ctx, d.gen
}

func (d *Dashboard) commit(gen uint64, ds *entity.Dataset) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.gen {
		return false
	}
	d.current.Store(ds)
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	return true
}
