package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/jhoicas/Cuentas-api/internal/application/dto"
)

// corsMethods métodos anunciados en las respuestas preflight.
const corsMethods = "GET,HEAD,PUT,PATCH,POST,DELETE"

// OriginGuard rechaza (403) las peticiones cuyo Origin no está en la lista permitida.
// Las peticiones sin cabecera Origin (curl, servidor a servidor) pasan siempre.
func OriginGuard(allowed []string) fiber.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" {
			return c.Next()
		}
		if _, ok := set[origin]; ok {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: dto.MsgCORSRejected})
	}
}

// CORS añade las cabeceras CORS para los orígenes permitidos y responde los preflight con 204.
// Con la lista vacía devuelve nil: ningún origen de navegador está permitido y OriginGuard ya los rechaza.
func CORS(allowed []string) fiber.Handler {
	if len(allowed) == 0 {
		return nil
	}
	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowed, ","),
		AllowMethods:     corsMethods,
		AllowCredentials: true,
	})
}
