package occurrence

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProtocolGenerator_FormatoCorto(t *testing.T) {
	g := NewProtocolGenerator()
	now := time.Date(2025, 12, 8, 14, 7, 33, 0, time.UTC)

	id := g.Next(now, nil)
	assert.Regexp(t, regexp.MustCompile(`^\d{3}202512081407$`), id)
}

func TestProtocolGenerator_UsaUTC(t *testing.T) {
	g := NewProtocolGenerator()
	brasilia := time.FixedZone("BRT", -3*3600)
	now := time.Date(2025, 12, 8, 22, 30, 0, 0, brasilia)

	assert.Regexp(t, `^\d{3}202512090130$`, g.Next(now, nil))
}

func TestProtocolGenerator_NoRepiteEnElMismoProceso(t *testing.T) {
	g := NewProtocolGenerator()
	now := time.Date(2025, 12, 8, 14, 7, 0, 0, time.UTC)

	seen := map[string]bool{}
	for i := 0; i < 1500; i++ {
		id := g.Next(now, nil)
		assert.False(t, seen[id], "protocolo repetido %s", id)
		seen[id] = true
	}
}

func TestProtocolGenerator_ColisionesPasanAFormatoLargo(t *testing.T) {
	// fuente fija: el formato corto siempre colisiona
	g := newProtocolGeneratorWithRand(func(n int) int {
		if n == 1000 {
			return 7
		}
		return 1234
	})
	now := time.Date(2025, 12, 8, 14, 7, 5, 250*int(time.Millisecond), time.UTC)
	taken := func(id string) bool { return id == "007202512081407" }

	id := g.Next(now, taken)
	assert.Equal(t, "007"+"20251208140705"+"250"+"1234", id)
}

func TestProtocolGenerator_RespetaTaken(t *testing.T) {
	calls := 0
	g := newProtocolGeneratorWithRand(func(int) int {
		calls++
		return calls
	})
	now := time.Date(2025, 12, 8, 14, 7, 0, 0, time.UTC)

	id := g.Next(now, func(id string) bool { return id == "001202512081407" })
	assert.Equal(t, "002202512081407", id)
}

func TestProtocolGenerator_OlvidaMinutosAnteriores(t *testing.T) {
	g := NewProtocolGenerator()
	first := time.Date(2025, 12, 8, 14, 7, 0, 0, time.UTC)
	for i := 0; i < 50; i++ {
		g.Next(first, nil)
	}
	assert.Len(t, g.issued, 50)

	id := g.Next(first.Add(time.Minute), nil)
	assert.Regexp(t, `^\d{3}202512081408$`, id)
	assert.Len(t, g.issued, 1)
	assert.Contains(t, g.issued, id)
}

func TestProtocolGenerator_MinutoAnteriorSigueCubiertoPorTaken(t *testing.T) {
	g := newProtocolGeneratorWithRand(func(int) int { return 5 })
	now := time.Date(2025, 12, 8, 14, 7, 0, 0, time.UTC)
	stored := map[string]bool{}
	taken := func(id string) bool { return stored[id] }

	id := g.Next(now, taken)
	stored[id] = true
	g.Next(now.Add(time.Minute), taken)

	// de vuelta al minuto anterior (reloj corregido): el id guardado no se repite
	again := g.Next(now, taken)
	assert.NotEqual(t, id, again)
}
