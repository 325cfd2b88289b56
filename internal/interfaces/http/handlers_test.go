package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/Litigios-api/internal/application/analytics"
	"github.com/jhoicas/Litigios-api/internal/application/auth"
	"github.com/jhoicas/Litigios-api/internal/application/dto"
	"github.com/jhoicas/Litigios-api/internal/application/occurrence"
	"github.com/jhoicas/Litigios-api/internal/application/report"
	"github.com/jhoicas/Litigios-api/internal/application/usecase"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/export"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/lock"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/memory"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/metrics"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/sqlite"
	apphttp "github.com/jhoicas/Litigios-api/internal/interfaces/http"
)

// newServer arma la API completa sobre SQLite temporal con la semilla cargada.
func newServer(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "litigios.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	store := occurrence.NewStore(sqlite.NewOccurrenceRepository(db), lock.NewLocalLocker(), nil)
	require.NoError(t, store.Initialize(ctx))

	rec := metrics.New()
	occUC := usecase.NewOccurrenceUseCase(store, nil, rec, nil)
	return apphttp.NewApp(apphttp.RouterDeps{
		AuthUC:       auth.NewAuthUseCase(memory.NewUserRepository(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}),
		OccurrenceUC: occUC,
		AIUC:         usecase.NewAIUseCase(nil, occUC, time.Second, rec, nil),
		DashboardUC:  appanalytics.NewDashboardUseCase(occUC),
		ReportUC:     report.NewReportUseCase(occUC, export.NewCSVRenderer(), export.NewXMLRenderer()),
		Metrics:      rec,
		JWTSecret:    testJWTSecret,
		ServiceName:  "litigios-test",
	})
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func login(t *testing.T, app *fiber.App, userID string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{UserID: userID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[dto.LoginResponse](t, resp).Token
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_SelectorDePerfil(t *testing.T) {
	app := newServer(t)

	resp := call(t, app, http.MethodGet, "/api/auth/users", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.UserResponse](t, resp), 5)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{UserID: "ninguem"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	tok := login(t, app, "gerente_an")
	resp = call(t, app, http.MethodGet, "/api/me", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[dto.UserResponse](t, resp)
	assert.Equal(t, "ASA_NORTE", me.Store)
	assert.Equal(t, "CLUBE ASA NORTE", me.StoreLabel)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ocorrências
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_FlujoCrearYResolver(t *testing.T) {
	app := newServer(t)
	ana := login(t, app, "gerente_an")
	carlos := login(t, app, "admin_cd")

	resp := call(t, app, http.MethodPost, "/api/occurrences", ana, map[string]any{
		"description":   "Caixa violada na entrega",
		"product_name":  "TV LED 50",
		"vehicle_plate": "ABC1D23",
		"claimed_value": "1299.90",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.OccurrenceResponse](t, resp)
	assert.Equal(t, "Ocorrência - TV LED 50", created.Title)
	assert.Equal(t, "OPEN", created.Status)
	require.NotNil(t, created.VehiclePlate)
	assert.Equal(t, "ABC1D23", *created.VehiclePlate)

	// el CD no registra
	resp = call(t, app, http.MethodPost, "/api/occurrences", carlos, map[string]any{"description": "x"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// el gerente no resuelve
	resp = call(t, app, http.MethodPost, "/api/occurrences/"+created.ID+"/resolve", ana, dto.ResolveOccurrenceRequest{Decision: "APPROVED"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = call(t, app, http.MethodPost, "/api/occurrences/"+created.ID+"/resolve", carlos, dto.ResolveOccurrenceRequest{Decision: "REJECTED", Comments: "sem evidência"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resolved := decode[dto.OccurrenceResponse](t, resp)
	assert.Equal(t, "REJECTED", resolved.Status)
	assert.Equal(t, "NÃO PROCEDENTE", resolved.StatusLabel)

	// segunda decisión
	resp = call(t, app, http.MethodPost, "/api/occurrences/"+created.ID+"/resolve", carlos, dto.ResolveOccurrenceRequest{Decision: "APPROVED"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// decisión inválida
	resp = call(t, app, http.MethodPost, "/api/occurrences/0449035006122025/resolve", carlos, dto.ResolveOccurrenceRequest{Decision: "OPEN"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ListadoYVisibilidad(t *testing.T) {
	app := newServer(t)
	marcos := login(t, app, "gerente_sia")

	resp := call(t, app, http.MethodGet, "/api/occurrences", marcos, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.OccurrenceListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "SIA", list.Items[0].Store)

	resp = call(t, app, http.MethodGet, "/api/occurrences/0449035006122025", marcos, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)

	resp = call(t, app, http.MethodGet, "/api/occurrences?status=bogus", marcos, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	geral := login(t, app, "admin_geral")
	resp = call(t, app, http.MethodGet, "/api/occurrences?q=iogurte", geral, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list = decode[dto.OccurrenceListResponse](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "0449035007122028", list.Items[0].ID)

	resp = call(t, app, http.MethodGet, "/api/occurrences", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// IA, dashboard, relatório
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_SugerenciaSinServicioUsaTextoFijo(t *testing.T) {
	app := newServer(t)
	carlos := login(t, app, "admin_cd")

	resp := call(t, app, http.MethodPost, "/api/occurrences/0449035006122025/suggestion", carlos, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.AITextResponse](t, resp)
	assert.True(t, got.Fallback)
	assert.Equal(t, usecase.SuggestionErrorText, got.Text)

	resp = call(t, app, http.MethodPost, "/api/ai/analyze", carlos, dto.AnalyzeDraftRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_DashboardPorUsuario(t *testing.T) {
	app := newServer(t)

	resp := call(t, app, http.MethodGet, "/api/dashboard/summary", login(t, app, "gerente_an"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sum := decode[dto.DashboardSummaryDTO](t, resp)
	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.Open)
	assert.Equal(t, 1, sum.InAnalysis)
}

func TestAPI_RelatorioCSV(t *testing.T) {
	app := newServer(t)

	resp := call(t, app, http.MethodGet, "/api/reports/occurrences?format=csv", login(t, app, "gerente_ac"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "relatorio_litigios_")
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")

	body, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Título,Loja,Produto,Status,Data", lines[0])

	resp = call(t, app, http.MethodGet, "/api/reports/occurrences?format=pdf", login(t, app, "gerente_ac"), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "pdf no registrado en este servidor")
}

func TestAPI_HealthMetricsY404(t *testing.T) {
	app := newServer(t)

	resp := call(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "litigios_http_requests_total")

	resp = call(t, app, http.MethodGet, "/nada", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
