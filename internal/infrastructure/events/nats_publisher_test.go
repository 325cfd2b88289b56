package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Litigios-api/internal/application/ports"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/events"
)

type fakeConn struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	f.subjects = append(f.subjects, subject)
	f.payloads = append(f.payloads, data)
	return f.err
}

func TestPublish_SubjectYSobre(t *testing.T) {
	conn := &fakeConn{}
	p := events.NewPublisherForTest(conn, "litigios.")
	at := time.Date(2025, 12, 8, 10, 30, 0, 0, time.UTC)

	err := p.Publish(context.Background(), ports.EventOccurrenceResolved, ports.OccurrenceEvent{
		ID: "0449035006122025", Store: "ASA_NORTE", Status: "APPROVED", ActorID: "admin_cd", At: at,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"litigios.occurrence.resolved"}, conn.subjects)

	var env events.Envelope
	require.NoError(t, json.Unmarshal(conn.payloads[0], &env))
	assert.Equal(t, ports.EventOccurrenceResolved, env.EventType)
	assert.Equal(t, "0449035006122025", env.Payload.ID)
	assert.Equal(t, "APPROVED", env.Payload.Status)
	assert.True(t, env.OccurredAt.Equal(at))
	assert.NotEmpty(t, env.EventID.String())
}

func TestPublish_PrefijoPorDefectoYError(t *testing.T) {
	conn := &fakeConn{err: errors.New("desconectado")}
	p := events.NewPublisherForTest(conn, "")
	assert.Equal(t, "litigios.occurrence.created", p.Subject(ports.EventOccurrenceCreated))

	err := p.Publish(context.Background(), ports.EventOccurrenceCreated, ports.OccurrenceEvent{ID: "1"})
	assert.ErrorContains(t, err, "desconectado")
}

func TestPublish_ContextoCancelado(t *testing.T) {
	conn := &fakeConn{}
	p := events.NewPublisherForTest(conn, "x")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, p.Publish(ctx, ports.EventOccurrenceCreated, ports.OccurrenceEvent{}), context.Canceled)
	assert.Empty(t, conn.subjects)
}
