package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Litigios-api/internal/application/dto"
	"github.com/jhoicas/Litigios-api/internal/application/ports"
	"github.com/jhoicas/Litigios-api/internal/domain"
	"github.com/jhoicas/Litigios-api/internal/domain/entity"
	"github.com/jhoicas/Litigios-api/pkg/logger"
)

// Textos fijos cuando el servicio de IA falla o no responde nada.
const (
	SuggestionErrorText = "Erro ao gerar sugestão."
	SuggestionEmptyText = "Sem sugestão disponível."
	AnalysisErrorText   = "Erro ao conectar com o serviço de IA."
	AnalysisEmptyText   = "Não foi possível gerar uma análise no momento."
)

const (
	defaultAITimeout     = 10 * time.Second
	suggestionSystemRole = "Você é administrador de um Centro de Distribuição e responde de forma direta."
	analysisSystemRole   = "Você é um especialista em análise de riscos e litígios de varejo."
	outcomeOK            = "ok"
	outcomeFallback      = "fallback"
)

// AIUseCase sugerencias de texto para el CD y parecer preliminar para las lojas.
// Es consultivo: nunca escribe en el almacén y nunca devuelve el error del LLM;
// ante cualquier fallo responde el texto fijo con Fallback=true.
// Cada llamada lleva su propio timeout para no retener goroutines del servidor.
type AIUseCase struct {
	llm     ports.LLMService
	occs    *OccurrenceUseCase
	timeout time.Duration
	metrics ports.MetricsRecorder
	log     *logger.Logger
}

// NewAIUseCase construye el caso de uso. llm nil = servicio deshabilitado (siempre fallback).
func NewAIUseCase(llm ports.LLMService, occs *OccurrenceUseCase, timeout time.Duration, metrics ports.MetricsRecorder, log *logger.Logger) *AIUseCase {
	if timeout <= 0 {
		timeout = defaultAITimeout
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AIUseCase{llm: llm, occs: occs, timeout: timeout, metrics: metrics, log: log.Component("ai_usecase")}
}

// SuggestResolution sugiere una acción técnica para una ocorrência visible al usuario.
// Solo los errores de lectura (inexistente, sin acceso, almacenamiento) se propagan.
func (uc *AIUseCase) SuggestResolution(ctx context.Context, user entity.User, id string) (*dto.AITextResponse, error) {
	o, err := uc.occs.getVisible(ctx, user, id)
	if err != nil {
		return nil, err
	}
	prompt := fmt.Sprintf(`Como administrador de um Centro de Distribuição, sugira uma ação técnica para a seguinte ocorrência.
Seja direto.

Problema: %s
Descrição: %s
Produto: %s`, o.Title, o.Description, o.ProductName)

	text, fallback := uc.generate(ctx, suggestionSystemRole, prompt, SuggestionErrorText, SuggestionEmptyText, o.ID)
	return &dto.AITextResponse{OccurrenceID: o.ID, Text: text, Fallback: fallback}, nil
}

// AnalyzeDraft parecer preliminar (máx. 3 frases) sobre si el litigio parece procedente.
func (uc *AIUseCase) AnalyzeDraft(ctx context.Context, in dto.AnalyzeDraftRequest) (*dto.AITextResponse, error) {
	if strings.TrimSpace(in.Title) == "" && strings.TrimSpace(in.Description) == "" && strings.TrimSpace(in.ProductName) == "" {
		return nil, fmt.Errorf("%w: informe título, descrição ou produto", domain.ErrValidation)
	}
	prompt := fmt.Sprintf(`Analise a seguinte ocorrência e forneça um parecer preliminar curto (máximo 3 frases) sobre se parece ser PROCEDENTE (culpa da empresa/logística) ou NÃO PROCEDENTE (culpa do cliente/mau uso), e por quê.

Título: %s
Produto: %s
Descrição: %s

Responda em formato de texto simples.`, in.Title, in.ProductName, in.Description)

	text, fallback := uc.generate(ctx, analysisSystemRole, prompt, AnalysisErrorText, AnalysisEmptyText, "")
	return &dto.AITextResponse{Text: text, Fallback: fallback}, nil
}

// generate llama al LLM con timeout y traduce cualquier fallo al texto fijo.
func (uc *AIUseCase) generate(ctx context.Context, system, prompt, errText, emptyText, occurrenceID string) (string, bool) {
	start := time.Now()
	if uc.llm == nil {
		uc.metrics.SuggestionCompleted(outcomeFallback, 0)
		return errText, true
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.llm.GenerateText(ctx, system, prompt)
	elapsed := time.Since(start)
	if err != nil {
		wrapped := fmt.Errorf("%w: %v", domain.ErrSuggestionService, err)
		ev := uc.log.Warn().Err(wrapped).Dur("elapsed", elapsed).Bool("timeout", errors.Is(err, context.DeadlineExceeded))
		if occurrenceID != "" {
			ev = ev.Str("occurrence_id", occurrenceID)
		}
		ev.Msg("servicio de IA falló, se usa texto fijo")
		uc.metrics.SuggestionCompleted(outcomeFallback, elapsed)
		return errText, true
	}
	text = strings.TrimSpace(text)
	if text == "" {
		uc.metrics.SuggestionCompleted(outcomeFallback, elapsed)
		return emptyText, true
	}
	uc.metrics.SuggestionCompleted(outcomeOK, elapsed)
	return text, false
}
