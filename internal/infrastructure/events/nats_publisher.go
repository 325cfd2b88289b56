// Package events publicación de eventos de dominio de ocorrências.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/jhoicas/Litigios-api/internal/application/ports"
)

// Envelope sobre común de todos los eventos publicados.
type Envelope struct {
	EventID    uuid.UUID             `json:"event_id"`
	EventType  string                `json:"event_type"`
	OccurredAt time.Time             `json:"occurred_at"`
	Payload    ports.OccurrenceEvent `json:"payload"`
}

// publisher lo que usamos de *nats.Conn.
type publisher interface {
	Publish(subject string, data []byte) error
}

var _ ports.EventPublisher = (*NATSPublisher)(nil)

// NATSPublisher publica en <prefix>.<eventType>.
type NATSPublisher struct {
	conn   publisher
	prefix string
	close  func()
}

// Connect abre la conexión a NATS con reconexión infinita.
func Connect(url, prefix, clientName string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name(clientName),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.Timeout(5*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats: conectar %s: %w", url, err)
	}
	p := newPublisher(nc, prefix)
	p.close = func() { _ = nc.Drain() }
	return p, nil
}

func newPublisher(conn publisher, prefix string) *NATSPublisher {
	prefix = strings.Trim(prefix, ".")
	if prefix == "" {
		prefix = "litigios"
	}
	return &NATSPublisher{conn: conn, prefix: prefix}
}

// Subject devuelve el subject NATS de un tipo de evento.
func (p *NATSPublisher) Subject(eventType string) string {
	return p.prefix + "." + eventType
}

// Publish serializa el sobre y lo publica. NATS core no espera confirmación.
func (p *NATSPublisher) Publish(ctx context.Context, eventType string, ev ports.OccurrenceEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(Envelope{
		EventID:    uuid.New(),
		EventType:  eventType,
		OccurredAt: ev.At.UTC(),
		Payload:    ev,
	})
	if err != nil {
		return fmt.Errorf("nats: serializar %s: %w", eventType, err)
	}
	if err := p.conn.Publish(p.Subject(eventType), data); err != nil {
		return fmt.Errorf("nats: publicar %s: %w", eventType, err)
	}
	return nil
}

// Close drena la conexión (mensajes pendientes se envían antes de cerrar).
func (p *NATSPublisher) Close() {
	if p.close != nil {
		p.close()
	}
}

// Nop descarta los eventos (NATS_URL vacío).
type Nop struct{}

func (Nop) Publish(context.Context, string, ports.OccurrenceEvent) error { return nil }
