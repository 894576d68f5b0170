package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Cuentas-api/internal/application/dto"
	"github.com/jhoicas/Cuentas-api/pkg/config"
	"github.com/jhoicas/Cuentas-api/pkg/jwt"
)

// LocalUserID clave en c.Locals del usuario verificado por token.
const LocalUserID = "user_id"

// IdentityMiddleware verifica en el servidor que el :userId de la ruta es el del token.
//
// Con cfg deshabilitado (sin IDENTITY_JWT_SECRET) el :userId se confía tal cual, como
// lo envía el cliente. Habilitado:
//   - 401 → falta el Bearer Token o es inválido/expirado.
//   - 403 → el subject del token no coincide con :userId.
//
// Debe registrarse en la cadena de la ruta (no con app.Use) para tener acceso a :userId.
func IdentityMiddleware(cfg config.IdentityConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.Enabled() {
			return c.Next()
		}
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token vacío"})
		}
		userID, err := jwt.Parse(cfg.JWTSecret, cfg.Issuer, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token inválido o expirado"})
		}
		if pathUser := c.Params("userId"); pathUser != "" && pathUser != userID {
			return c.Status(fiber.StatusForbidden).JSON(dto.SuccessResponse{Success: false, Error: "el token no corresponde al usuario"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID devuelve el UserID verificado (vacío si la verificación está deshabilitada).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
