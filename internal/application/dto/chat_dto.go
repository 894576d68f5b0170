package dto

// ChatRequest body para POST /chat/:userId/business/:businessId.
type ChatRequest struct {
	Message     string `json:"message"`
	ChatSession string `json:"chat_session"`
}

// ChatResponse respuesta del asistente.
type ChatResponse struct {
	Reply string `json:"reply"`
}
