package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/application/usecase"
	"github.com/jhoicas/Cuentas-api/internal/domain"
)

// ChatHandler reenvía mensajes del asistente para un negocio verificado.
type ChatHandler struct {
	uc  *usecase.ChatUseCase
	res responder
}

// NewChatHandler construye el handler.
func NewChatHandler(uc *usecase.ChatUseCase, opts HandlerOptions) *ChatHandler {
	return &ChatHandler{uc: uc, res: newResponder(opts)}
}

// Send godoc
// @Summary      Enviar mensaje al asistente
// @Description  Verifica la propiedad del negocio y reenvía el mensaje al flujo de automatización.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        userId      path  string           true  "ID del usuario"
// @Param        businessId  path  int              true  "ID del negocio"
// @Param        body        body  dto.ChatRequest  true  "message (obligatorio) y chat_session"
// @Success      200  {object}  dto.ChatResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      504  {object}  dto.ErrorResponse
// @Router       /chat/{userId}/business/{businessId} [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	businessID, ok := pathBusinessID(c)
	if !ok {
		return h.res.validation(c)
	}
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return h.res.validation(c)
	}
	out, err := h.uc.Send(requestContext(c), pathUserID(c), businessID, in)
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			h.res.log.Warn().Err(err).Int64("business_id", businessID).Msg("webhook de chat")
			if errors.Is(err, context.DeadlineExceeded) {
				return c.Status(fiber.StatusGatewayTimeout).JSON(dto.ErrorResponse{Error: "el asistente tardó demasiado; intenta de nuevo"})
			}
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Error: "el asistente no está disponible"})
		}
		return h.res.fail(c, err, dto.MsgBusinessNotVerified)
	}
	return c.JSON(out)
}
