package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/MRMRMR033/pos-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, estado, latencia, request id y usuario.
// Las respuestas 5xx incluyen la causa interna que respondError guardó en Locals.
func RequestLogger(log *logger.Logger) fiber.Handler {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		evt := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			evt = log.Error()
			if cause, ok := c.Locals(localCause).(error); ok {
				evt = evt.Err(cause)
			}
		case status >= fiber.StatusBadRequest:
			evt = log.Warn()
		}
		rid, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		evt.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("request_id", rid).
			Int64("user_id", GetUserID(c)).
			Msg("request")
		return nil
	}
}
