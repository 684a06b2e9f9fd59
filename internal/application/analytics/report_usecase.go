package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/pos-analytics/internal/application/ports"
)

// ReportUseCase genera el reporte PDF del dashboard de una tienda.
type ReportUseCase struct {
	dashboard *DashboardUseCase
	generator ports.SnapshotPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(dashboard *DashboardUseCase, generator ports.SnapshotPDFGenerator) *ReportUseCase {
	return &ReportUseCase{dashboard: dashboard, generator: generator}
}

// DownloadPDF devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReportUseCase) DownloadPDF(ctx context.Context, req SnapshotRequest) (pdfBytes []byte, filename string, err error) {
	snap, err := uc.dashboard.GetSnapshot(ctx, req)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.generator.GenerateDashboardPDF(ctx, snap, req.Locale)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("dashboard_%s_%s_%s.pdf", snap.StoreID, snap.Window, snap.GeneratedAt.Format("20060102"))
	return pdfBytes, filename, nil
}
