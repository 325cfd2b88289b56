package ports

import (
	"context"
	"time"
)

// Tipos de evento de dominio publicados.
const (
	EventOccurrenceCreated  = "occurrence.created"
	EventOccurrenceResolved = "occurrence.resolved"
)

// OccurrenceEvent carga útil de los eventos de ocorrência.
type OccurrenceEvent struct {
	ID      string    `json:"id"`
	Store   string    `json:"store"`
	Status  string    `json:"status"`
	ActorID string    `json:"actor_id"`
	At      time.Time `json:"at"`
}

// EventPublisher publica eventos de dominio. Un fallo no revierte la operación que lo originó.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, ev OccurrenceEvent) error
}
