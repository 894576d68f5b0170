package http

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/domain"
	"github.com/jhoicas/Cuentas-api/pkg/logger"
)

// HandlerOptions opciones comunes a los handlers.
type HandlerOptions struct {
	// StrictStatus: 400 en validación y 403 en propiedad. Por defecto ambos responden 200
	// con el cuerpo de error, que es lo que esperan los clientes actuales.
	StrictStatus bool
	Log          *logger.Logger
}

// responder centraliza la forma de las respuestas de error.
type responder struct {
	strict bool
	log    *logger.Logger
}

func newResponder(opts HandlerOptions) responder {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return responder{strict: opts.StrictStatus, log: log}
}

// validation responde {"error": "Missing Required Parameters"}.
func (r responder) validation(c *fiber.Ctx) error {
	status := fiber.StatusOK
	if r.strict {
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: dto.MsgMissingParameters})
}

// forbidden responde {"success": false, "error": msg}.
func (r responder) forbidden(c *fiber.Ctx, msg string) error {
	status := fiber.StatusOK
	if r.strict {
		status = fiber.StatusForbidden
	}
	return c.Status(status).JSON(dto.SuccessResponse{Success: false, Error: msg})
}

// internal registra el error completo y responde 500 con un texto genérico.
func (r responder) internal(c *fiber.Ctx, err error) error {
	r.log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
		Msg("error de infraestructura")
	return c.Status(fiber.StatusInternalServerError).SendString(dto.MsgServerError)
}

// fail clasifica err: validación, propiedad (forbiddenMsg) o infraestructura.
func (r responder) fail(c *fiber.Ctx, err error, forbiddenMsg string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return r.validation(c)
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrNotFound):
		return r.forbidden(c, forbiddenMsg)
	default:
		return r.internal(c, err)
	}
}

// pathUserID copia :userId. c.Params apunta al buffer de fasthttp, que se reutiliza
// en la siguiente petición; el valor se persiste como dueño del negocio.
func pathUserID(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("userId"))
}

// pathBusinessID lee :businessId como entero positivo.
func pathBusinessID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("businessId"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// requestContext contexto de la petición para las llamadas al almacén.
func requestContext(c *fiber.Ctx) context.Context {
	return c.UserContext()
}
