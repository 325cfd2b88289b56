// Package analytics contiene el caso de uso del dashboard de ocorrências.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Litigios-api/internal/application/dto"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/internal/domain/policy"
)

// VisibleSource entrega la vista de ocorrências de un usuario.
type VisibleSource interface {
	Visible(ctx context.Context, user entity.User) []*entity.Occurrence
}

// DashboardUseCase genera el resumen de estados y lojas.
//
// Fuente de datos: siempre la vista filtrada del usuario; un gerente de loja
// solo cuenta lo suyo.
type DashboardUseCase struct {
	source VisibleSource
	now    func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(source VisibleSource) *DashboardUseCase {
	return &DashboardUseCase{source: source, now: time.Now}
}

// WithClock reemplaza el reloj usado para la etiqueta del mes.
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO para el usuario indicado.
//
//  1. ComputeStatistics → contadores y porciones del gráfico
//  2. GroupByStore      → barras por loja (IN_ANALYSIS suma como aberto)
//  3. claimed_value     → total reclamado
func (uc *DashboardUseCase) GetSummary(ctx context.Context, user entity.User) (*dto.DashboardSummaryDTO, error) {
	occs := uc.source.Visible(ctx, user)
	stats := policy.ComputeStatistics(occs)

	// ── Porciones (solo > 0) ───────────────────────────────────────────────────
	counts := map[entity.Status]int{
		entity.StatusOpen:       stats.Open,
		entity.StatusInAnalysis: stats.InAnalysis,
		entity.StatusApproved:   stats.Approved,
		entity.StatusRejected:   stats.Rejected,
	}
	slices := make([]dto.StatusSliceDTO, 0, len(counts))
	for _, st := range entity.AllStatuses() {
		if counts[st] == 0 {
			continue
		}
		slices = append(slices, dto.StatusSliceDTO{Status: string(st), Label: st.Label(), Value: counts[st]})
	}

	// ── Lojas, en orden fijo y sin baldes vacíos ───────────────────────────────
	grouped := policy.GroupByStore(occs)
	stores := make([]dto.StoreBucketDTO, 0, len(grouped))
	for _, loc := range entity.AllLocations() {
		b, ok := grouped[loc]
		if !ok {
			continue
		}
		stores = append(stores, dto.StoreBucketDTO{
			Store:      string(loc),
			StoreLabel: loc.Label(),
			Approved:   b.Approved,
			Rejected:   b.Rejected,
			Open:       b.Open,
		})
	}

	total := decimal.Zero
	for _, o := range occs {
		total = total.Add(o.ClaimedAmount())
	}

	return &dto.DashboardSummaryDTO{
		Open:         stats.Open,
		InAnalysis:   stats.InAnalysis,
		Approved:     stats.Approved,
		Rejected:     stats.Rejected,
		Total:        stats.Total,
		StatusSlices: slices,
		Stores:       stores,
		ClaimedTotal: total.Round(2),
		DateLabel:    monthLabel(uc.now()),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Dezembro 2025".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
