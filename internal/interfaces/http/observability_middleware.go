package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Cuentas-api/pkg/logger"
	"github.com/jhoicas/Cuentas-api/pkg/metrics"
)

// MetricsMiddleware registra en Prometheus cada petición por patrón de ruta.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}
		done := metrics.RequestStarted()
		defer done()

		start := time.Now()
		err := c.Next()
		// Tras Next, c.Route() es la última ruta que atendió la petición.
		metrics.RecordRequest(c.Method(), c.Route().Path, strconv.Itoa(responseStatus(c, err)), time.Since(start))
		return err
	}
}

// AccessLog emite un evento por petición con método, ruta, estado, latencia y request id.
func AccessLog(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := responseStatus(c, err)

		event := log.Info()
		if status >= fiber.StatusInternalServerError {
			event = log.Warn()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("petición HTTP")
		return err
	}
}

// responseStatus estado final; si un handler devolvió error aún no se ha escrito.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
