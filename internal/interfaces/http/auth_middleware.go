package http

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/pkg/jwt"
)

// LocalPrincipal key de c.Locals con el *Principal de la sesión.
const LocalPrincipal = "principal"

// SessionConfig parámetros de la cookie de sesión.
type SessionConfig struct {
	JWTSecret  string
	CookieName string
	Secure     bool
}

// Principal usuario autenticado de la petición. Los flags se leen del usuario
// persistido, no del token, para que una baja o degradación tenga efecto inmediato.
type Principal struct {
	UserID      string
	Username    string
	IsStaff     bool
	IsSuperuser bool
	TokenID     string
	ExpiresAt   time.Time
}

// userLookup lo implementa *usecase.UserUseCase.
type userLookup interface {
	GetByID(ctx context.Context, id string) (*dto.UserResponse, error)
}

// revocationChecker lo implementa el revocador Redis; nil desactiva la comprobación.
type revocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthMiddleware valida el token de sesión (cookie o Bearer) y carga el Principal.
// Sin sesión válida redirige (303) a /login?next=<ruta>.
func AuthMiddleware(cfg SessionConfig, users userLookup, revoked revocationChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessionToken(c, cfg.CookieName)
		if token == "" {
			return redirectToLogin(c)
		}
		claims, err := jwt.Parse(cfg.JWTSecret, token)
		if err != nil {
			clearSessionCookie(c, cfg)
			return redirectToLogin(c)
		}
		if revoked != nil {
			isRevoked, err := revoked.IsRevoked(c.UserContext(), claims.ID)
			if err != nil {
				return fiber.NewError(fiber.StatusServiceUnavailable, "no se pudo verificar la sesión, intente más tarde")
			}
			if isRevoked {
				clearSessionCookie(c, cfg)
				return redirectToLogin(c)
			}
		}
		user, err := users.GetByID(c.UserContext(), claims.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				clearSessionCookie(c, cfg)
				return redirectToLogin(c)
			}
			return err
		}
		if !user.IsActive {
			clearSessionCookie(c, cfg)
			return redirectToLogin(c)
		}
		p := &Principal{
			UserID:      user.ID,
			Username:    user.Username,
			IsStaff:     user.IsStaff,
			IsSuperuser: user.IsSuperuser,
			TokenID:     claims.ID,
		}
		if claims.ExpiresAt != nil {
			p.ExpiresAt = claims.ExpiresAt.Time
		}
		c.Locals(LocalPrincipal, p)
		return c.Next()
	}
}

// RequireStaff deja pasar solo a usuarios staff o superusuarios. Usar DESPUÉS de AuthMiddleware.
func RequireStaff() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil || !(p.IsStaff || p.IsSuperuser) {
			return domain.ErrForbidden
		}
		return c.Next()
	}
}

// RequireSuperuser deja pasar solo a superusuarios. Usar DESPUÉS de AuthMiddleware.
func RequireSuperuser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil || !p.IsSuperuser {
			return domain.ErrForbidden
		}
		return c.Next()
	}
}

// GetPrincipal devuelve el Principal del contexto (nil si la ruta es pública).
func GetPrincipal(c *fiber.Ctx) *Principal {
	p, _ := c.Locals(LocalPrincipal).(*Principal)
	return p
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	if p := GetPrincipal(c); p != nil {
		return p.UserID
	}
	return ""
}

func sessionToken(c *fiber.Ctx, cookieName string) string {
	if v := c.Cookies(cookieName); v != "" {
		return v
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func redirectToLogin(c *fiber.Ctx) error {
	return c.Redirect("/login?next="+url.QueryEscape(c.OriginalURL()), fiber.StatusSeeOther)
}

func setSessionCookie(c *fiber.Ctx, cfg SessionConfig, token string, expires time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func clearSessionCookie(c *fiber.Ctx, cfg SessionConfig) {
	c.Cookie(&fiber.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
		Secure:   cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

// safeNext solo acepta rutas locales; cualquier otra cosa vuelve al índice.
// Los navegadores descartan tabs y saltos de línea al leer Location, así que
// los caracteres de control y las barras invertidas se rechazan de entrada.
func safeNext(next string) string {
	const fallback = "/users"
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return fallback
	}
	for _, r := range next {
		if r < 0x20 || r == 0x7f || r == '\\' {
			return fallback
		}
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return fallback
	}
	return next
}
