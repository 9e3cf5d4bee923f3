package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo; pertenece siempre a una categoría.
type Product struct {
	ID          string
	CategoryID  string
	Name        string
	ShortDesc   string
	Description string
	Price       decimal.Decimal // 2 decimales
	Image       string          // ruta relativa dentro de MEDIA_DIR, vacío si no hay imagen
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ToggleActive invierte la visibilidad del producto (baja/alta lógica).
func (p *Product) ToggleActive() {
	p.IsActive = !p.IsActive
}
