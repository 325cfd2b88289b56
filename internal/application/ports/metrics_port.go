package ports

import "time"

// MetricsRecorder contadores e histogramas del negocio.
type MetricsRecorder interface {
	OccurrenceCreated(store string)
	OccurrenceResolved(decision string)
	// SuggestionCompleted outcome: "ok" o "fallback".
	SuggestionCompleted(outcome string, elapsed time.Duration)
}

// NopMetrics descarta todas las métricas.
type NopMetrics struct{}

func (NopMetrics) OccurrenceCreated(string) {}
func (NopMetrics) OccurrenceResolved(string) {}
func (NopMetrics) SuggestionCompleted(string, time.Duration) {}
