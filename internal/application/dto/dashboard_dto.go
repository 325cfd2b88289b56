package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Todo se calcula sobre las ocorrências visibles para el usuario.
type DashboardSummaryDTO struct {
	Open       int `json:"open"`
	InAnalysis int `json:"in_analysis"`
	Approved   int `json:"approved"`
	Rejected   int `json:"rejected"`
	Total      int `json:"total"`

	// Solo estados con valor > 0 (gráfico de torta)
	StatusSlices []StatusSliceDTO `json:"status_slices"`

	// Status por unidad; IN_ANALYSIS se cuenta como aberto
	Stores []StoreBucketDTO `json:"stores"`

	ClaimedTotal decimal.Decimal `json:"claimed_total"` // suma de claimed_value
	DateLabel    string          `json:"date_label"`    // ej: "Dezembro 2025"
}

// StatusSliceDTO porción del gráfico de estados.
type StatusSliceDTO struct {
	Status string `json:"status"`
	Label  string `json:"label"`
	Value  int    `json:"value"`
}

// StoreBucketDTO barras por loja.
type StoreBucketDTO struct {
	Store      string `json:"store"`
	StoreLabel string `json:"store_label"`
	Approved   int    `json:"approved"`
	Rejected   int    `json:"rejected"`
	Open       int    `json:"open"`
}
