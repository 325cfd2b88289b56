package dto

import (
	"time"

	"github.com/jhoicas/Litigios-api/internal/domain/entity"
)

// OccurrenceResponse ocorrência completa. Los campos descriptivos se aplanan desde
// entity.OccurrenceDetails con sus nombres snake_case.
type OccurrenceResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ProductCode      string    `json:"product_code"`
	ProductName      string    `json:"product_name"`
	Store            string    `json:"store"`
	StoreLabel       string    `json:"store_label"`
	ReportedBy       string    `json:"reported_by"`
	ReportedByName   string    `json:"reported_by_name"`
	Status           string    `json:"status"`
	StatusLabel      string    `json:"status_label"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	CDComments       *string   `json:"cd_comments,omitempty"`
	CDDecisionBy     *string   `json:"cd_decision_by,omitempty"`
	CDDecisionByName *string   `json:"cd_decision_by_name,omitempty"`
	AIAnalysis       *string   `json:"ai_analysis,omitempty"`
	CanResolve       bool      `json:"can_resolve"`

	entity.OccurrenceDetails
}

// OccurrenceSummary fila del listado.
type OccurrenceSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ProductName string    `json:"product_name"`
	Store       string    `json:"store"`
	StoreLabel  string    `json:"store_label"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	CreatedAt   time.Time `json:"created_at"`
}

// OccurrenceListResponse listado paginado.
type OccurrenceListResponse struct {
	Items []OccurrenceSummary `json:"items"`
	Page  PageResponse        `json:"page"`
}

// OccurrenceFilter parámetros de GET /api/occurrences.
type OccurrenceFilter struct {
	Query  string `query:"q"`
	Status string `query:"status"`
	PageRequest
}

// CreateOccurrenceRequest formulario de nueva ocorrência. La loja y el autor salen del token.
type CreateOccurrenceRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description" validate:"required"`
	ProductCode string  `json:"product_code"`
	ProductName string  `json:"product_name"`
	AIAnalysis  *string `json:"ai_analysis,omitempty"`

	entity.OccurrenceDetails
}

// ResolveOccurrenceRequest decisión del CD.
type ResolveOccurrenceRequest struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
	Comments string `json:"comments"`
}

// ToOccurrenceResponse mapea la entidad a la respuesta.
func ToOccurrenceResponse(o *entity.Occurrence, canResolve bool) OccurrenceResponse {
	return OccurrenceResponse{
		ID:                o.ID,
		Title:             o.Title,
		Description:       o.Description,
		ProductCode:       o.ProductCode,
		ProductName:       o.ProductName,
		Store:             string(o.Store),
		StoreLabel:        o.Store.Label(),
		ReportedBy:        o.ReportedBy,
		ReportedByName:    o.ReportedByName,
		Status:            string(o.Status),
		StatusLabel:       o.Status.Label(),
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		CDComments:        o.CDComments,
		CDDecisionBy:      o.CDDecisionBy,
		CDDecisionByName:  o.CDDecisionByName,
		AIAnalysis:        o.AIAnalysis,
		CanResolve:        canResolve,
		OccurrenceDetails: o.OccurrenceDetails,
	}
}

// ToOccurrenceSummary mapea la entidad a la fila del listado.
func ToOccurrenceSummary(o *entity.Occurrence) OccurrenceSummary {
	return OccurrenceSummary{
		ID:          o.ID,
		Title:       o.Title,
		ProductName: o.ProductName,
		Store:       string(o.Store),
		StoreLabel:  o.Store.Label(),
		Status:      string(o.Status),
		StatusLabel: o.Status.Label(),
		CreatedAt:   o.CreatedAt,
	}
}
