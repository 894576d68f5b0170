package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/application/usecase"
)

// BusinessHandler maneja las peticiones HTTP para el recurso Business.
type BusinessHandler struct {
	uc  *usecase.BusinessUseCase
	res responder
}

// NewBusinessHandler construye el handler inyectando el caso de uso.
func NewBusinessHandler(uc *usecase.BusinessUseCase, opts HandlerOptions) *BusinessHandler {
	return &BusinessHandler{uc: uc, res: newResponder(opts)}
}

// List godoc
// @Summary      Listar negocios del usuario
// @Tags         businesses
// @Produce      json
// @Param        userId  path  string  true  "ID del usuario (proveedor de identidad)"
// @Success      200  {array}   dto.BusinessResponse
// @Failure      500  {string}  string
// @Router       /businesses/get/{userId} [get]
func (h *BusinessHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(requestContext(c), pathUserID(c))
	if err != nil {
		return h.res.fail(c, err, dto.MsgBusinessNotVerified)
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Verificar que el negocio pertenece al usuario
// @Tags         businesses
// @Produce      json
// @Param        userId      path  string  true  "ID del usuario"
// @Param        businessId  path  int     true  "ID del negocio"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      500  {string}  string
// @Router       /businesses/verify/{userId}/business/{businessId} [get]
func (h *BusinessHandler) Verify(c *fiber.Ctx) error {
	businessID, ok := pathBusinessID(c)
	if !ok {
		return h.res.validation(c)
	}
	verified, err := h.uc.Verify(requestContext(c), pathUserID(c), businessID)
	if err != nil {
		return h.res.fail(c, err, dto.MsgBusinessNotVerified)
	}
	if !verified {
		return c.JSON(dto.SuccessResponse{Success: false, Error: dto.MsgBusinessNotVerified})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Create godoc
// @Summary      Crear negocio
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Param        userId  path  string                     true  "ID del usuario dueño"
// @Param        body    body  dto.CreateBusinessRequest  true  "name (obligatorio) y address"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      500  {string}  string
// @Router       /businesses/new/{userId} [post]
func (h *BusinessHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return h.res.validation(c)
	}
	out, err := h.uc.Create(requestContext(c), pathUserID(c), in)
	if err != nil {
		return h.res.fail(c, err, dto.MsgBusinessNotVerified)
	}
	return c.JSON(dto.SuccessResponse{Success: true, ID: out.ID})
}

// Delete godoc
// @Summary      Eliminar negocio (solo el dueño)
// @Tags         businesses
// @Produce      json
// @Param        userId      path  string  true  "ID del usuario"
// @Param        businessId  path  int     true  "ID del negocio"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      500  {string}  string
// @Router       /businesses/delete/{userId}/business/{businessId} [delete]
func (h *BusinessHandler) Delete(c *fiber.Ctx) error {
	businessID, ok := pathBusinessID(c)
	if !ok {
		return h.res.validation(c)
	}
	deleted, err := h.uc.Delete(requestContext(c), pathUserID(c), businessID)
	if err != nil {
		return h.res.fail(c, err, dto.MsgDeleteNotAllowed)
	}
	if !deleted {
		return c.JSON(dto.SuccessResponse{Success: false, Error: dto.MsgDeleteFailed})
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
