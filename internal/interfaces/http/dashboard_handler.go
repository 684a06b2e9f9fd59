package http

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appanalytics "github.com/jhoicas/pos-analytics/internal/application/analytics"
	"github.com/jhoicas/pos-analytics/internal/application/dto"
	"github.com/jhoicas/pos-analytics/internal/domain"
	"github.com/jhoicas/pos-analytics/internal/domain/entity"
	"github.com/jhoicas/pos-analytics/pkg/i18n"
)

// SnapshotService lo implementa *analytics.DashboardUseCase.
type SnapshotService interface {
	GetSnapshot(ctx context.Context, req appanalytics.SnapshotRequest) (*dto.DashboardSnapshotDTO, error)
	Refresh(ctx context.Context, storeID string) (*dto.RefreshResultDTO, error)
}

// ReportService lo implementa *analytics.ReportUseCase.
type ReportService interface {
	DownloadPDF(ctx context.Context, req appanalytics.SnapshotRequest) ([]byte, string, error)
}

// DashboardHandler maneja los endpoints del dashboard de ventas.
type DashboardHandler struct {
	uc          SnapshotService
	report      ReportService
	defaultLang string
	log         zerolog.Logger
}

// NewDashboardHandler construye el handler. report puede ser nil (sin PDF).
func NewDashboardHandler(uc SnapshotService, report ReportService, defaultLang string, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, report: report, defaultLang: defaultLang, log: log}
}

// logRequest deja traza de quién pidió qué; el token ya fue validado por AuthMiddleware.
func (h *DashboardHandler) logRequest(c *fiber.Ctx, op string, req appanalytics.SnapshotRequest) {
	h.log.Info().
		Str("op", op).
		Str("store_id", GetStoreID(c)).
		Str("user_id", GetUserID(c)).
		Str("role", GetRole(c)).
		Str("window", string(req.Window)).
		Str("lang", req.Locale.Code).
		Bool("refresh", req.Refresh).
		Msg("petición dashboard")
}

// GetSnapshot godoc
// @Summary      Métricas del dashboard
// @Description  Totales, rankings, inventario, deudas y actividad reciente de la tienda del token
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        window   query  string  false  "all | today | week | month (por defecto all)"
// @Param        lang     query  string  false  "en | ar | fr; si falta se usa Accept-Language"
// @Param        refresh  query  bool    false  "Forzar recarga de las fuentes"
// @Success      200  {object}  dto.DashboardSnapshotDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      408  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/snapshot [get]
func (h *DashboardHandler) GetSnapshot(c *fiber.Ctx) error {
	req, errResp := h.snapshotRequest(c)
	if errResp != nil {
		return c.Status(errResp.status).JSON(errResp.body)
	}
	h.logRequest(c, "snapshot", req)
	snap, err := h.uc.GetSnapshot(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(snap)
}

// Refresh godoc
// @Summary      Recargar fuentes
// @Description  Vuelve a leer las cuatro fuentes de la tienda y reemplaza el dataset en memoria
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RefreshResultDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      408  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/dashboard/refresh [post]
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	storeID := GetStoreID(c)
	if storeID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "store_id no encontrado en el token"})
	}
	h.logRequest(c, "refresh", appanalytics.SnapshotRequest{StoreID: storeID, Refresh: true})
	res, err := h.uc.Refresh(c.UserContext(), storeID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// DownloadReport godoc
// @Summary      Reporte PDF del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Param        window  query  string  false  "all | today | week | month"
// @Param        lang    query  string  false  "en | ar | fr"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      501  {object}  dto.ErrorResponse
// @Router       /api/dashboard/report.pdf [get]
func (h *DashboardHandler) DownloadReport(c *fiber.Ctx) error {
	if h.report == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: "reporte PDF no configurado"})
	}
	req, errResp := h.snapshotRequest(c)
	if errResp != nil {
		return c.Status(errResp.status).JSON(errResp.body)
	}
	h.logRequest(c, "report", req)
	pdfBytes, filename, err := h.report.DownloadPDF(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

type handlerError struct {
	status int
	body   dto.ErrorResponse
}

func (h *DashboardHandler) snapshotRequest(c *fiber.Ctx) (appanalytics.SnapshotRequest, *handlerError) {
	storeID := GetStoreID(c)
	if storeID == "" {
		return appanalytics.SnapshotRequest{}, &handlerError{fiber.StatusUnauthorized, dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "store_id no encontrado en el token"}}
	}
	window, err := entity.ParseTimeWindow(c.Query("window"))
	if err != nil {
		return appanalytics.SnapshotRequest{}, &handlerError{fiber.StatusBadRequest, dto.ErrorResponse{Code: "INVALID_WINDOW", Message: "window debe ser all, today, week o month"}}
	}
	refresh := false
	if raw := c.Query("refresh"); raw != "" {
		refresh, err = strconv.ParseBool(raw)
		if err != nil {
			return appanalytics.SnapshotRequest{}, &handlerError{fiber.StatusBadRequest, dto.ErrorResponse{Code: "VALIDATION", Message: "refresh debe ser booleano"}}
		}
	}
	return appanalytics.SnapshotRequest{
		StoreID: storeID,
		Window:  window,
		Locale:  i18n.Match(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage), h.defaultLang),
		Refresh: refresh,
	}, nil
}

// writeError traduce errores de dominio a códigos HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidWindow):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_WINDOW", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrSourceUnavailable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "SOURCE_UNAVAILABLE", Message: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		return c.Status(fiber.StatusRequestTimeout).JSON(dto.ErrorResponse{Code: "TIMEOUT", Message: "las fuentes tardaron demasiado; intenta de nuevo"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
