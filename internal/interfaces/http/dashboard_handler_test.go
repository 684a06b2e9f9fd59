package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/pos-analytics/internal/application/analytics"
	"github.com/jhoicas/pos-analytics/internal/application/dto"
	"github.com/jhoicas/pos-analytics/internal/domain"
	"github.com/jhoicas/pos-analytics/internal/domain/entity"
	apphttp "github.com/jhoicas/pos-analytics/internal/interfaces/http"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeSnapshots struct {
	lastReq   appanalytics.SnapshotRequest
	refreshed string
	err       error
}

func (f *fakeSnapshots) GetSnapshot(_ context.Context, req appanalytics.SnapshotRequest) (*dto.DashboardSnapshotDTO, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &dto.DashboardSnapshotDTO{StoreID: req.StoreID, Window: string(req.Window), Lang: req.Locale.Code}, nil
}

func (f *fakeSnapshots) Refresh(_ context.Context, storeID string) (*dto.RefreshResultDTO, error) {
	f.refreshed = storeID
	if f.err != nil {
		return nil, f.err
	}
	return &dto.RefreshResultDTO{StoreID: storeID, Transactions: 3}, nil
}

type fakeReports struct{ err error }

func (f *fakeReports) DownloadPDF(_ context.Context, req appanalytics.SnapshotRequest) ([]byte, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return []byte("%PDF-1.3 fake"), "dashboard_" + req.StoreID + ".pdf", nil
}

func buildDashboardApp(snaps *fakeSnapshots, reports apphttp.ReportService) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		DashboardUC: snaps,
		ReportUC:    reports,
		JWTSecret:   testJWTSecret,
		JWTIssuer:   testIssuer,
		DefaultLang: "en",
	})
	return app
}

func call(t *testing.T, app *fiber.App, method, target string, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ── Tests ─────────────────────────────────────────────────────────────────────

// Caso 1: la tienda sale del token y la ventana de la query.
func TestDashboardHandler_Snapshot_OK(t *testing.T) {
	snaps := &fakeSnapshots{}
	app := buildDashboardApp(snaps, &fakeReports{})

	resp := call(t, app, http.MethodGet, "/api/dashboard/snapshot?window=week&lang=fr&refresh=true",
		map[string]string{"Authorization": bearer(t, testStoreID)})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body dto.DashboardSnapshotDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testStoreID, body.StoreID)
	assert.Equal(t, "week", body.Window)
	assert.Equal(t, "fr", body.Lang)
	assert.Equal(t, entity.WindowWeek, snaps.lastReq.Window)
	assert.True(t, snaps.lastReq.Refresh)
}

// Caso 2: sin window → all; idioma desde Accept-Language.
func TestDashboardHandler_Snapshot_DefaultsYAcceptLanguage(t *testing.T) {
	snaps := &fakeSnapshots{}
	app := buildDashboardApp(snaps, &fakeReports{})

	resp := call(t, app, http.MethodGet, "/api/dashboard/snapshot", map[string]string{
		"Authorization":   bearer(t, testStoreID),
		"Accept-Language": "ar-SA,ar;q=0.9",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.WindowAll, snaps.lastReq.Window)
	assert.Equal(t, "ar", snaps.lastReq.Locale.Code)
	assert.False(t, snaps.lastReq.Refresh)
}

// Caso 3: ventana desconocida → 400 INVALID_WINDOW sin llamar al caso de uso.
func TestDashboardHandler_Snapshot_VentanaInvalida(t *testing.T) {
	snaps := &fakeSnapshots{}
	app := buildDashboardApp(snaps, &fakeReports{})

	resp := call(t, app, http.MethodGet, "/api/dashboard/snapshot?window=year",
		map[string]string{"Authorization": bearer(t, testStoreID)})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_WINDOW")
	assert.Empty(t, snaps.lastReq.StoreID)
}

// Caso 4: refresh no booleano → 400.
func TestDashboardHandler_Snapshot_RefreshInvalido(t *testing.T) {
	app := buildDashboardApp(&fakeSnapshots{}, &fakeReports{})

	resp := call(t, app, http.MethodGet, "/api/dashboard/snapshot?refresh=quizas",
		map[string]string{"Authorization": bearer(t, testStoreID)})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Caso 5: sin token → 401.
func TestDashboardHandler_Snapshot_SinToken(t *testing.T) {
	app := buildDashboardApp(&fakeSnapshots{}, &fakeReports{})

	resp := call(t, app, http.MethodGet, "/api/dashboard/snapshot", nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: errores de dominio mapeados a códigos HTTP.
func TestDashboardHandler_Snapshot_MapeoDeErrores(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: transactions", domain.ErrSourceUnavailable), http.StatusServiceUnavailable, "SOURCE_UNAVAILABLE"},
		{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		{context.DeadlineExceeded, http.StatusRequestTimeout, "TIMEOUT"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			app := buildDashboardApp(&fakeSnapshots{err: tc.err}, &fakeReports{})
			resp := call(t, app, http.MethodGet, "/api/dashboard/snapshot",
				map[string]string{"Authorization": bearer(t, testStoreID)})
			defer resp.Body.Close()

			assert.Equal(t, tc.status, resp.StatusCode)
			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

// Caso 7: POST /refresh recarga la tienda del token.
func TestDashboardHandler_Refresh(t *testing.T) {
	snaps := &fakeSnapshots{}
	app := buildDashboardApp(snaps, &fakeReports{})

	resp := call(t, app, http.MethodPost, "/api/dashboard/refresh",
		map[string]string{"Authorization": bearer(t, testStoreID)})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, testStoreID, snaps.refreshed)

	var body dto.RefreshResultDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 3, body.Transactions)
}

// Caso 8: el PDF se envía como adjunto.
func TestDashboardHandler_ReportPDF(t *testing.T) {
	app := buildDashboardApp(&fakeSnapshots{}, &fakeReports{})

	resp := call(t, app, http.MethodGet, "/api/dashboard/report.pdf?window=month",
		map[string]string{"Authorization": bearer(t, testStoreID)})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "dashboard_"+testStoreID+".pdf")

	body, _ := io.ReadAll(resp.Body)
	assert.True(t, len(body) > 4 && string(body[:4]) == "%PDF")
}

// Caso 9: sin generador de reportes → 501.
func TestDashboardHandler_ReportPDF_NoConfigurado(t *testing.T) {
	app := buildDashboardApp(&fakeSnapshots{}, nil)

	resp := call(t, app, http.MethodGet, "/api/dashboard/report.pdf",
		map[string]string{"Authorization": bearer(t, testStoreID)})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
}

// Caso 10: cada petición queda en el log con la tienda, el usuario y el rol del token.
func TestDashboardHandler_LogDePeticion(t *testing.T) {
	var buf bytes.Buffer
	reqLog := zerolog.New(&buf)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		DashboardUC: &fakeSnapshots{},
		JWTSecret:   testJWTSecret,
		JWTIssuer:   testIssuer,
		DefaultLang: "en",
		Log:         &reqLog,
	})

	resp := call(t, app, http.MethodGet, "/api/dashboard/snapshot?window=today",
		map[string]string{"Authorization": bearer(t, testStoreID)})
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "snapshot", entry["op"])
	assert.Equal(t, testUserID, entry["user_id"])
	assert.Equal(t, testStoreID, entry["store_id"])
	assert.Equal(t, "admin", entry["role"])
	assert.Equal(t, "today", entry["window"])
}

// Caso 11: docs/swagger.json documenta todas las rutas /api registradas.
func TestSwaggerDocumentaLasRutas(t *testing.T) {
	raw, err := os.ReadFile("../../../docs/swagger.json")
	require.NoError(t, err)
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	app := buildDashboardApp(&fakeSnapshots{}, &fakeReports{})
	for _, r := range app.GetRoutes(true) {
		if !strings.HasPrefix(r.Path, "/api/dashboard/") || r.Method == http.MethodHead {
			continue
		}
		ops, ok := doc.Paths[r.Path]
		if assert.True(t, ok, "ruta %s sin documentar", r.Path) {
			assert.Contains(t, ops, strings.ToLower(r.Method), "método %s %s sin documentar", r.Method, r.Path)
		}
	}
}
