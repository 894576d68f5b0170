package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/internal/application/usecase"
)

// AccountHandler maneja las peticiones HTTP de cuentas de un negocio verificado.
// No hay rutas de actualización ni borrado de cuentas.
type AccountHandler struct {
	uc  *usecase.AccountUseCase
	res responder
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.AccountUseCase, opts HandlerOptions) *AccountHandler {
	return &AccountHandler{uc: uc, res: newResponder(opts)}
}

// List godoc
// @Summary      Listar cuentas del negocio
// @Description  Un negocio que no es del usuario responde {"success": false, "error": "This business is not verified!"},
// @Description  igual que el resto de fallos de propiedad. Versiones previas de esta ruta respondían
// @Description  {"error": "Missing Required Parameters"}; los clientes deben tratar ambos como rechazo.
// @Tags         accounts
// @Produce      json
// @Param        userId      path  string  true  "ID del usuario"
// @Param        businessId  path  int     true  "ID del negocio"
// @Success      200  {array}   dto.AccountResponse
// @Failure      500  {string}  string
// @Router       /accounts/get/{userId}/business/{businessId} [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	businessID, ok := pathBusinessID(c)
	if !ok {
		return h.res.validation(c)
	}
	out, err := h.uc.List(requestContext(c), pathUserID(c), businessID)
	if err != nil {
		return h.res.fail(c, err, dto.MsgBusinessNotVerified)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cuenta en el negocio
// @Description  type: CUSTOMER, SUPPLIER, EXPENSE o ASSET. openingBalance es opcional (0 por defecto) y debe caber en NUMERIC(18,2).
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        userId      path  string                    true  "ID del usuario"
// @Param        businessId  path  int                       true  "ID del negocio"
// @Param        body        body  dto.CreateAccountRequest  true  "name y type obligatorios"
// @Success      200  {object}  dto.SuccessResponse
// @Failure      500  {string}  string
// @Router       /accounts/new/{userId}/business/{businessId} [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	businessID, ok := pathBusinessID(c)
	if !ok {
		return h.res.validation(c)
	}
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return h.res.validation(c)
	}
	out, err := h.uc.Create(requestContext(c), pathUserID(c), businessID, in)
	if err != nil {
		return h.res.fail(c, err, dto.MsgBusinessNotVerified)
	}
	return c.JSON(dto.SuccessResponse{Success: true, ID: out.ID})
}
