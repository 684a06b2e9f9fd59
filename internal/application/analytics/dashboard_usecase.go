package analytics

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/pos-analytics/internal/application/dto"
	"github.com/jhoicas/pos-analytics/internal/application/ports"
	"github.com/jhoicas/pos-analytics/internal/domain"
	domanalytics "github.com/jhoicas/pos-analytics/internal/domain/analytics"
	"github.com/jhoicas/pos-analytics/internal/domain/entity"
	"github.com/jhoicas/pos-analytics/pkg/i18n"
)

// DashboardConfig parámetros del caso de uso.
type DashboardConfig struct {
	DatasetTTL time.Duration  // antigüedad máxima de un dataset antes de recargarlo; 0 = no expira
	Location   *time.Location // zona para la ventana "today"; nil = UTC
	TopN       int            // filas por ranking; 0 = analytics.DefaultTopN
}

// SnapshotRequest parámetros de una consulta del dashboard.
type SnapshotRequest struct {
	StoreID string
	Window  entity.TimeWindow
	Locale  i18n.Locale
	Refresh bool // fuerza la recarga de las fuentes
}

// DashboardUseCase mantiene una sesión Dashboard por tienda.
//
// Orden de búsqueda del dataset:
//  1. sesión en memoria, si no está vencida
//  2. DatasetCache (Redis u otro), si no está vencido
//  3. Loader (las cuatro fuentes en paralelo)
//
// El recálculo al cambiar de ventana siempre es síncrono sobre el dataset en memoria.
type DashboardUseCase struct {
	loader DatasetLoader
	cache  ports.DatasetCache
	cfg    DashboardConfig
	log    zerolog.Logger
	clock  func() time.Time

	mu       sync.Mutex
	sessions map[string]*Dashboard
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(loader DatasetLoader, cache ports.DatasetCache, cfg DashboardConfig, log zerolog.Logger) *DashboardUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &DashboardUseCase{
		loader:   loader,
		cache:    cache,
		cfg:      cfg,
		log:      log,
		clock:    time.Now,
		sessions: make(map[string]*Dashboard),
	}
}

// GetSnapshot devuelve el snapshot de la tienda para la ventana pedida.
func (uc *DashboardUseCase) GetSnapshot(ctx context.Context, req SnapshotRequest) (*dto.DashboardSnapshotDTO, error) {
	storeID := strings.TrimSpace(req.StoreID)
	if storeID == "" {
		return nil, fmt.Errorf("%w: store_id requerido", domain.ErrInvalidInput)
	}
	session := uc.session(storeID)

	if _, err := uc.ensureDataset(ctx, session, req.Refresh); err != nil {
		return nil, err
	}

	labels := domanalytics.DefaultLabels()
	labels.WeekdayNames = req.Locale.WeekdayNames()

	now := uc.clock().In(uc.cfg.Location)
	snap, ds, ok := session.Snapshot(req.Window, now, labels, uc.cfg.TopN)
	if !ok {
		return nil, domain.ErrSourceUnavailable
	}
	return NewSnapshotDTO(snap, ds, req.Locale), nil
}

// Refresh fuerza la recarga de las fuentes de la tienda.
func (uc *DashboardUseCase) Refresh(ctx context.Context, storeID string) (*dto.RefreshResultDTO, error) {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		return nil, fmt.Errorf("%w: store_id requerido", domain.ErrInvalidInput)
	}
	ds, err := uc.ensureDataset(ctx, uc.session(storeID), true)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResultDTO{
		StoreID:      ds.StoreID,
		DataLoadedAt: ds.LoadedAt,
		Transactions: len(ds.Transactions),
		Products:     len(ds.Products),
		Sellers:      len(ds.Sellers),
		Debts:        len(ds.Debts),
		Partial:      !ds.Complete(),
		Failures:     failuresDTO(ds.Failures),
	}, nil
}

// ── Sesiones y cache ──────────────────────────────────────────────────────────

func (uc *DashboardUseCase) session(storeID string) *Dashboard {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	s, ok := uc.sessions[storeID]
	if !ok {
		s = NewDashboard(storeID, uc.loader)
		uc.sessions[storeID] = s
	}
	return s
}

func (uc *DashboardUseCase) fresh(ds *entity.Dataset) bool {
	if ds == nil {
		return false
	}
	if uc.cfg.DatasetTTL <= 0 {
		return true
	}
	return ds.Age(uc.clock()) < uc.cfg.DatasetTTL
}

// ensureDataset devuelve un dataset vigente para la sesión. Sin force, las
// peticiones concurrentes de una tienda fría comparten una sola carga.
func (uc *DashboardUseCase) ensureDataset(ctx context.Context, session *Dashboard, force bool) (*entity.Dataset, error) {
	log := uc.log.With().Str("store_id", session.StoreID()).Logger()

	if !force {
		if ds := session.Dataset(); uc.fresh(ds) {
			return ds, nil
		}
		if cached := uc.fromCache(ctx, session.StoreID(), log); cached != nil {
			if session.Install(cached) {
				log.Debug().Time("loaded_at", cached.LoadedAt).Msg("dataset recuperado del cache")
			}
			return session.Dataset(), nil
		}
	}

	ds, err := session.Load(ctx, force)
	if err != nil {
		return nil, err
	}

	if ds.Complete() && uc.cache != nil {
		if err := uc.cache.Set(ctx, ds, uc.cfg.DatasetTTL); err != nil {
			log.Warn().Err(err).Msg("no se pudo guardar el dataset en cache")
		}
	}
	log.Info().Bool("partial", !ds.Complete()).Bool("forced", force).Msg("dataset actualizado")
	return ds, nil
}

func (uc *DashboardUseCase) fromCache(ctx context.Context, storeID string, log zerolog.Logger) *entity.Dataset {
	if uc.cache == nil {
		return nil
	}
	ds, ok, err := uc.cache.Get(ctx, storeID)
	if err != nil {
		log.Warn().Err(err).Msg("lectura de cache fallida")
		return nil
	}
	if !ok || !uc.fresh(ds) {
		return nil
	}
	return ds
}
