package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/application/ports"
	"github.com/jhoicas/Cuentas-api/internal/domain"
)

// ChatUseCase reenvía mensajes del asistente al webhook externo, solo para negocios verificados.
type ChatUseCase struct {
	relay        ports.ChatRelay
	verifier     *OwnershipVerifier
	timeout      time.Duration
	storeTimeout time.Duration
}

// NewChatUseCase construye el caso de uso. relay puede ser nil si no hay webhook configurado.
func NewChatUseCase(relay ports.ChatRelay, verifier *OwnershipVerifier, timeout, storeTimeoutDur time.Duration) *ChatUseCase {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChatUseCase{
		relay:        relay,
		verifier:     verifier,
		timeout:      timeout,
		storeTimeout: storeTimeout(storeTimeoutDur),
	}
}

// Send valida el mensaje, verifica la propiedad del negocio y delega al webhook.
// La propiedad se verifica antes de mirar el webhook: un no dueño recibe ErrForbidden aunque no haya relay.
func (uc *ChatUseCase) Send(ctx context.Context, userID string, businessID int64, in dto.ChatRequest) (*dto.ChatResponse, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return nil, domain.ErrInvalidInput
	}
	err := storeCall(ctx, uc.storeTimeout, "chat.verify", func(ctx context.Context) error {
		ok, err := uc.verifier.Verify(ctx, userID, businessID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrForbidden
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if uc.relay == nil {
		return nil, fmt.Errorf("%w: CHAT_WEBHOOK_URL no configurado", domain.ErrUpstream)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	reply, err := uc.relay.Send(ctx, ports.ChatMessage{
		Message:     message,
		BusinessID:  businessID,
		ChatSession: in.ChatSession,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}
	return &dto.ChatResponse{Reply: reply}, nil
}
