package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-admin/internal/application/auth"
	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/domain"
)

// SessionHandler login y logout del back-office.
type SessionHandler struct {
	uc  *auth.AuthUseCase
	cfg SessionConfig
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *auth.AuthUseCase, cfg SessionConfig) *SessionHandler {
	return &SessionHandler{uc: uc, cfg: cfg}
}

// LoginForm GET /login
func (h *SessionHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, fiber.StatusOK, "login", fiber.Map{
		"Title": "Iniciar sesión",
		"Form":  dto.LoginForm{Next: c.Query("next")},
	})
}

// Login POST /login. Fija la cookie de sesión y redirige a next.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginForm
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	data := fiber.Map{"Title": "Iniciar sesión", "Form": dto.LoginForm{Username: in.Username, Next: in.Next}}

	session, err := h.uc.Login(c.UserContext(), in)
	switch {
	case err == nil:
	case isValidation(err):
		return renderForm(c, "login", data, err)
	case errors.Is(err, domain.ErrUnauthorized):
		data["Error"] = "Usuario o contraseña incorrectos."
		return render(c, fiber.StatusUnauthorized, "login", data)
	case errors.Is(err, domain.ErrForbidden):
		data["Error"] = "Su cuenta no tiene acceso a la administración."
		return render(c, fiber.StatusForbidden, "login", data)
	default:
		return err
	}

	setSessionCookie(c, h.cfg, session.Token, session.ExpiresAt)
	return c.Redirect(safeNext(in.Next), fiber.StatusSeeOther)
}

// Logout POST /logout. Revoca el token (si hay Redis) y borra la cookie.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if p := GetPrincipal(c); p != nil {
		if err := h.uc.Logout(c.UserContext(), p.TokenID, p.ExpiresAt); err != nil {
			return err
		}
	}
	clearSessionCookie(c, h.cfg)
	return c.Redirect("/login", fiber.StatusSeeOther)
}
