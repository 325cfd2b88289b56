package occurrence

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"
)

// maxShortAttempts intentos con el formato corto antes de pasar al extendido.
const maxShortAttempts = 20

// ProtocolGenerator genera números de protocolo: 3 dígitos aleatorios + AAAAMMDDhhmm (UTC).
// Recuerda lo emitido en el minuto en curso; los minutos anteriores ya están en la
// colección y los cubre taken.
type ProtocolGenerator struct {
	mu     sync.Mutex
	minute string
	issued map[string]struct{}
	intN   func(n int) int
}

// NewProtocolGenerator crea un generador con fuente aleatoria por defecto.
func NewProtocolGenerator() *ProtocolGenerator {
	return &ProtocolGenerator{issued: make(map[string]struct{}), intN: rand.IntN}
}

// newProtocolGeneratorWithRand permite fijar la fuente aleatoria en tests.
func newProtocolGeneratorWithRand(intN func(n int) int) *ProtocolGenerator {
	return &ProtocolGenerator{issued: make(map[string]struct{}), intN: intN}
}

// Next devuelve un protocolo que no está en taken ni fue emitido en este minuto por el generador.
// Con muchas colisiones en el mismo minuto cambia a un formato con segundos,
// milisegundos y 4 dígitos aleatorios más.
func (g *ProtocolGenerator) Next(now time.Time, taken func(id string) bool) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now = now.UTC()
	stamp := now.Format("200601021504")
	if stamp != g.minute {
		g.minute = stamp
		g.issued = make(map[string]struct{})
	}
	for i := 0; i < maxShortAttempts; i++ {
		id := fmt.Sprintf("%03d%s", g.intN(1000), stamp)
		if g.free(id, taken) {
			g.issued[id] = struct{}{}
			return id
		}
	}

	long := now.Format("20060102150405")
	ms := now.Nanosecond() / int(time.Millisecond)
	for {
		id := fmt.Sprintf("%03d%s%03d%04d", g.intN(1000), long, ms, g.intN(10000))
		if g.free(id, taken) {
			g.issued[id] = struct{}{}
			return id
		}
	}
}

func (g *ProtocolGenerator) free(id string, taken func(string) bool) bool {
	if _, dup := g.issued[id]; dup {
		return false
	}
	return taken == nil || !taken(id)
}
