package ports

import "context"

// ChatMessage mensaje que se reenvía al webhook de automatización.
type ChatMessage struct {
	Message     string `json:"message"`
	BusinessID  int64  `json:"business_id"`
	ChatSession string `json:"chat_session"`
}

// ChatRelay define el puerto de salida hacia el asistente de chat externo.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type ChatRelay interface {
	Send(ctx context.Context, msg ChatMessage) (string, error)
}
