package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// LocalCSRF key donde el middleware csrf deja el token del formulario.
const LocalCSRF = "csrf"

// render pinta una página dentro del layout principal con los datos comunes (sesión y token CSRF).
func render(c *fiber.Ctx, status int, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Me"] = GetPrincipal(c)
	data["CSRF"] = c.Locals(LocalCSRF)
	return c.Status(status).Render(name, data, layoutMain)
}

// renderForm re-pinta un formulario con errores por campo (422).
func renderForm(c *fiber.Ctx, name string, data fiber.Map, err error) error {
	data["Errors"] = domain.FieldErrors(err)
	return render(c, fiber.StatusUnprocessableEntity, name, data)
}

// isValidation indica si el error debe volver al formulario en lugar de a la página de error.
func isValidation(err error) bool {
	return domain.FieldErrors(err) != nil
}

// ErrorHandler traduce errores de dominio a status HTTP y página de error
// (JSON si el cliente lo pide en Accept).
// Los errores inesperados se registran y se responden como 500 sin detalles.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, message := statusFor(err)
		if status >= fiber.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Method()).
				Str("path", c.Path()).
				Int("status", status).
				Msg("error atendiendo la petición")
		}
		if c.Accepts(fiber.MIMETextHTML, fiber.MIMEApplicationJSON) == fiber.MIMEApplicationJSON {
			return c.Status(status).JSON(dto.ErrorResponse{Code: errorCode(status), Message: message})
		}
		if renderErr := render(c, status, "errors/error", fiber.Map{
			"Title":   message,
			"Status":  status,
			"Message": message,
		}); renderErr != nil {
			log.Error().Err(renderErr).Msg("render página de error")
			return c.Status(status).SendString(message)
		}
		return nil
	}
}

func statusFor(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "No encontrado"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "No tiene permisos para acceder a esta página"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "Debe iniciar sesión"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusUnprocessableEntity, "Datos inválidos"
	case errors.As(err, &fe):
		if fe.Code == fiber.StatusNotFound {
			return fe.Code, "No encontrado"
		}
		return fe.Code, fe.Message
	default:
		return fiber.StatusInternalServerError, "Error interno del servidor"
	}
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusForbidden:
		return "FORBIDDEN"
	case fiber.StatusUnauthorized:
		return "UNAUTHORIZED"
	case fiber.StatusConflict:
		return "CONFLICT"
	case fiber.StatusUnprocessableEntity:
		return "INVALID_INPUT"
	case fiber.StatusServiceUnavailable:
		return "UNAVAILABLE"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL"
	}
	return "BAD_REQUEST"
}
