package ports

import "context"

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Gemini, Anthropic, OpenAI, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// GenerateText envía las instrucciones de sistema y el mensaje del usuario
	// y devuelve el texto generado. El contexto debe llevar un timeout.
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
