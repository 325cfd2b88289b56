package usecase_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Litigios-api/internal/application/occurrence"
	"github.com/jhoicas/Litigios-api/internal/application/ports"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/lock"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/memory"
	"github.com/jhoicas/Litigios-api/internal/infrastructure/sqlite"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2025, 12, 8, 10, 30, 0, 0, time.UTC)

func user(t *testing.T, id string) entity.User {
	t.Helper()
	for _, u := range memory.DefaultUsers() {
		if u.ID == id {
			return u
		}
	}
	t.Fatalf("usuario %s no existe", id)
	return entity.User{}
}

// newSeededStore almacén sobre SQLite temporal con la semilla cargada.
func newSeededStore(t *testing.T) *occurrence.Store {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "litigios.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	store := occurrence.NewStore(sqlite.NewOccurrenceRepository(db), lock.NewLocalLocker(), nil,
		occurrence.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, store.Initialize(ctx))
	return store
}

type recordedEvent struct {
	Type string
	ports.OccurrenceEvent
}

type fakeEvents struct {
	mu     sync.Mutex
	events []recordedEvent
	err    error
}

func (f *fakeEvents) Publish(_ context.Context, eventType string, ev ports.OccurrenceEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{Type: eventType, OccurrenceEvent: ev})
	return f.err
}

type fakeMetrics struct {
	mu       sync.Mutex
	created  map[string]int
	resolved map[string]int
	outcomes map[string]int
}

func newFakeMetrics() *fakeMetrics {
	return &fakeMetrics{created: map[string]int{}, resolved: map[string]int{}, outcomes: map[string]int{}}
}

func (m *fakeMetrics) OccurrenceCreated(store string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created[store]++
}

func (m *fakeMetrics) OccurrenceResolved(decision string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resolved[decision]++
}

func (m *fakeMetrics) SuggestionCompleted(outcome string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
}

// fakeLLM responde con fn; registra los prompts recibidos.
type fakeLLM struct {
	fn      func(ctx context.Context) (string, error)
	prompts []string
}

func (f *fakeLLM) GenerateText(ctx context.Context, _, userPrompt string) (string, error) {
	f.prompts = append(f.prompts, userPrompt)
	return f.fn(ctx)
}
