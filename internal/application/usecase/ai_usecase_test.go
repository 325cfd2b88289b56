package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Litigios-api/internal/application/dto"
	"github.com/jhoicas/Litigios-api/internal/application/usecase"
	"github.com/jhoicas/Litigios-api/internal/domain"
)

func newAIUC(t *testing.T, llm *fakeLLM, timeout time.Duration) (*usecase.AIUseCase, *fakeMetrics) {
	t.Helper()
	m := newFakeMetrics()
	occs := usecase.NewOccurrenceUseCase(newSeededStore(t), nil, nil, nil)
	if llm == nil {
		return usecase.NewAIUseCase(nil, occs, timeout, m, nil), m
	}
	return usecase.NewAIUseCase(llm, occs, timeout, m, nil), m
}

func TestSuggestResolution_DevuelveTextoDelModelo(t *testing.T) {
	llm := &fakeLLM{fn: func(context.Context) (string, error) { return "  Reenviar o item faltante.\n", nil }}
	uc, m := newAIUC(t, llm, time.Second)

	got, err := uc.SuggestResolution(context.Background(), user(t, "admin_cd"), "0449035006122025")
	require.NoError(t, err)
	assert.Equal(t, "Reenviar o item faltante.", got.Text)
	assert.False(t, got.Fallback)
	assert.Equal(t, "0449035006122025", got.OccurrenceID)
	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "Produto Avariado na Entrega")
	assert.Contains(t, llm.prompts[0], "PNEU WESTLAKE")
	assert.Equal(t, 1, m.outcomes["ok"])
}

func TestSuggestResolution_FallosDevuelvenTextoFijo(t *testing.T) {
	cases := []struct {
		name string
		fn   func(context.Context) (string, error)
		want string
	}{
		{"error", func(context.Context) (string, error) { return "", errors.New("503") }, usecase.SuggestionErrorText},
		{"vacio", func(context.Context) (string, error) { return "   ", nil }, usecase.SuggestionEmptyText},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, m := newAIUC(t, &fakeLLM{fn: tc.fn}, time.Second)

			got, err := uc.SuggestResolution(context.Background(), user(t, "admin_cd"), "0449035006122025")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Text)
			assert.True(t, got.Fallback)
			assert.Equal(t, 1, m.outcomes["fallback"])
		})
	}
}

func TestSuggestResolution_TimeoutNoBloquea(t *testing.T) {
	llm := &fakeLLM{fn: func(ctx context.Context) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}
	uc, _ := newAIUC(t, llm, 20*time.Millisecond)

	start := time.Now()
	got, err := uc.SuggestResolution(context.Background(), user(t, "admin_cd"), "0449035006122025")
	require.NoError(t, err)
	assert.Equal(t, usecase.SuggestionErrorText, got.Text)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestSuggestResolution_SinServicio(t *testing.T) {
	uc, _ := newAIUC(t, nil, time.Second)

	got, err := uc.SuggestResolution(context.Background(), user(t, "admin_cd"), "0449035006122025")
	require.NoError(t, err)
	assert.True(t, got.Fallback)
	assert.Equal(t, usecase.SuggestionErrorText, got.Text)
}

func TestSuggestResolution_RespetaVisibilidad(t *testing.T) {
	llm := &fakeLLM{fn: func(context.Context) (string, error) { return "x", nil }}
	uc, _ := newAIUC(t, llm, time.Second)

	_, err := uc.SuggestResolution(context.Background(), user(t, "gerente_sia"), "0449035006122025")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.SuggestResolution(context.Background(), user(t, "admin_cd"), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, llm.prompts)
}

func TestAnalyzeDraft(t *testing.T) {
	llm := &fakeLLM{fn: func(context.Context) (string, error) { return "Parece PROCEDENTE.", nil }}
	uc, _ := newAIUC(t, llm, time.Second)
	ctx := context.Background()

	got, err := uc.AnalyzeDraft(ctx, dto.AnalyzeDraftRequest{Title: "Caixa violada", Description: "Lacre rompido", ProductName: "TV"})
	require.NoError(t, err)
	assert.Equal(t, "Parece PROCEDENTE.", got.Text)
	assert.Empty(t, got.OccurrenceID)
	assert.Contains(t, llm.prompts[0], "Lacre rompido")

	_, err = uc.AnalyzeDraft(ctx, dto.AnalyzeDraftRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	llm.fn = func(context.Context) (string, error) { return "", errors.New("down") }
	got, err = uc.AnalyzeDraft(ctx, dto.AnalyzeDraftRequest{Description: "algo"})
	require.NoError(t, err)
	assert.Equal(t, usecase.AnalysisErrorText, got.Text)
	assert.True(t, got.Fallback)
}
