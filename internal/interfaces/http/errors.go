package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/MRMRMR033/pos-api/internal/application/dto"
	"github.com/MRMRMR033/pos-api/internal/domain"
	"github.com/MRMRMR033/pos-api/pkg/logger"
	"github.com/MRMRMR033/pos-api/pkg/validation"
)

const msgInternal = "error interno del servidor"

// statusFor mapea el sentinela de dominio a HTTP.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// publicMessage mensaje para el cliente; los errores no tipados nunca exponen su detalle.
func publicMessage(err error, status int) string {
	if status == fiber.StatusInternalServerError {
		return msgInternal
	}
	if msg := domain.PublicMessage(err); msg != "" {
		return msg
	}
	for _, sentinel := range []error{domain.ErrNotFound, domain.ErrConflict, domain.ErrInvalidInput, domain.ErrUnauthorized, domain.ErrForbidden} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

func errorBody(c *fiber.Ctx, code, message string) dto.ErrorResponse {
	return dto.ErrorResponse{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
		Path:      c.OriginalURL(),
	}
}

// respondError escribe el cuerpo uniforme {code, message, timestamp, path}.
func respondError(c *fiber.Ctx, err error) error {
	status, code := statusFor(err)
	body := errorBody(c, code, publicMessage(err, status))
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		body.Fields = verrs
	}
	if status == fiber.StatusInternalServerError {
		c.Locals(localCause, err)
	}
	return c.Status(status).JSON(body)
}

func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(errorBody(c, code, message))
}

// parseID lee un parámetro de ruta entero positivo.
func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Invalidf("%s debe ser un entero positivo", name)
	}
	return id, nil
}

// parseBody decodifica el JSON de la petición.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return &domain.Error{Kind: domain.ErrInvalidInput, Msg: "cuerpo inválido", Cause: err}
	}
	return nil
}

// ErrorHandler manejador global de Fiber: rutas inexistentes, métodos no permitidos y pánicos recuperados
// responden con el mismo cuerpo que los handlers.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	if log == nil {
		log = logger.Nop()
	}
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "HTTP_ERROR"
			switch fe.Code {
			case fiber.StatusNotFound:
				code = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			case fiber.StatusBadRequest:
				code = "INVALID_INPUT"
			}
			msg := fe.Message
			if fe.Code >= fiber.StatusInternalServerError {
				msg = msgInternal
				log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
			}
			return c.Status(fe.Code).JSON(errorBody(c, code, msg))
		}
		log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
		return c.Status(fiber.StatusInternalServerError).JSON(errorBody(c, "INTERNAL", msgInternal))
	}
}
