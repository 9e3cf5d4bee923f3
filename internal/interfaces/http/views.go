package http

import (
	"fmt"
	"io/fs"
	nethttp "net/http"

	"github.com/gofiber/template/html/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/catalog-admin/web"
)

const layoutMain = "layouts/main"

// NewViews motor de plantillas sobre las plantillas embebidas en web/templates.
func NewViews() (*html.Engine, error) {
	sub, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("plantillas embebidas: %w", err)
	}
	engine := html.NewFileSystem(nethttp.FS(sub), ".html")
	engine.AddFunc("money", FormatMoney)
	engine.AddFunc("fieldError", fieldError)
	return engine, nil
}

// FormatMoney formatea un precio con separadores de miles y dos decimales (es).
func FormatMoney(d decimal.Decimal) string {
	return message.NewPrinter(language.Spanish).Sprintf("%.2f", d.Round(2).InexactFloat64())
}

func fieldError(errs map[string]string, field string) string {
	return errs[field]
}
