package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/jhoicas/Litigios-api/internal/application/ports"
)

var _ ports.LLMService = (*OpenAIService)(nil)

// OpenAIService adaptador de LLMService sobre el SDK oficial de OpenAI (chat completions).
type OpenAIService struct {
	client *openai.Client
	model  string
	hasKey bool
}

// NewOpenAIService construye el adaptador. Opciones extra (p.ej. option.WithBaseURL) se pasan al SDK.
func NewOpenAIService(apiKey, model string, opts ...option.RequestOption) *OpenAIService {
	all := append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)
	client := openai.NewClient(all...)
	return &OpenAIService{client: &client, model: model, hasKey: apiKey != ""}
}

// GenerateText primer choice de una chat completion con mensaje de sistema y de usuario.
func (s *OpenAIService) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !s.hasKey {
		return "", fmt.Errorf("AI: OPENAI_API_KEY no configurado")
	}

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if systemPrompt != "" {
		msgs = append(msgs, openai.SystemMessage(systemPrompt))
	}
	msgs = append(msgs, openai.UserMessage(userPrompt))

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(s.model),
		Messages: msgs,
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: OpenAI: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
