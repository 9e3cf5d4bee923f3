package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// ServerOptions opciones del servidor HTTP.
type ServerOptions struct {
	AppName     string
	CSRFEnabled bool
	MediaDir    string // vacío = no se sirven imágenes
}

// NewApp construye la app Fiber con vistas, middlewares comunes y rutas del back-office.
func NewApp(opts ServerOptions, deps RouterDeps, log *logger.Logger) (*fiber.App, error) {
	views, err := NewViews()
	if err != nil {
		return nil, err
	}
	httpLog := log.Component("http")

	app := fiber.New(fiber.Config{
		AppName:      opts.AppName,
		Immutable:    true, // los strings de BodyParser/Params sobreviven a la petición
		Views:        views,
		ErrorHandler: ErrorHandler(httpLog),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{ContextKey: LocalRequestID}))
	app.Use(helmet.New())
	app.Use(RequestLogger(httpLog))
	if opts.CSRFEnabled {
		app.Use(csrf.New(csrf.Config{
			KeyLookup:      "form:_csrf",
			CookieName:     "csrf_",
			CookieSameSite: "Lax",
			CookieSecure:   deps.Session.Secure,
			CookieHTTPOnly: true,
			Expiration:     time.Hour,
			ContextKey:     LocalCSRF,
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": opts.AppName})
	})
	if opts.MediaDir != "" {
		app.Static("/media", opts.MediaDir)
	}

	Router(app, deps)
	return app, nil
}
