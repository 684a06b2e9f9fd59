package ports

import (
	"context"

	"github.com/jhoicas/pos-analytics/internal/application/dto"
	"github.com/jhoicas/pos-analytics/pkg/i18n"
)

// SnapshotPDFGenerator puerto de salida para el reporte PDF del dashboard.
// Recibe el snapshot ya traducido; el locale solo decide el formato de números y títulos.
type SnapshotPDFGenerator interface {
	GenerateDashboardPDF(ctx context.Context, snapshot *dto.DashboardSnapshotDTO, locale i18n.Locale) ([]byte, error)
}
