package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tu-usuario/concesionario-pro/pkg/logger"
)

// HeaderRequestID header de correlación que viaja en la respuesta.
const HeaderRequestID = "X-Request-Id"

// RequestLogger asigna un request id (respeta el del cliente si viene) y
// registra cada petición con método, ruta, estado y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(HeaderRequestID, reqID)

		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()

		ev := log.Info()
		if err != nil || status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")

		return err
	}
}
