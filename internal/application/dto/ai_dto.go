package dto

// AnalyzeDraftRequest datos del formulario para el parecer preliminar.
type AnalyzeDraftRequest struct {
	Title       string `json:"title"`
	Description string `json:"description" validate:"required"`
	ProductName string `json:"product_name"`
}

// AITextResponse texto generado. Fallback=true cuando el servicio falló y el texto es el fijo.
type AITextResponse struct {
	OccurrenceID string `json:"occurrence_id,omitempty"`
	Text         string `json:"text"`
	Fallback     bool   `json:"fallback"`
}
