package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// maxPrice límite de numeric(12,2).
var maxPrice = decimal.NewFromInt(10_000_000_000)

// ProductForm formulario de producto (IsActive queda fuera: solo cambia vía baja/alta).
// Image lo rellena el handler con la ruta de la imagen subida, si la hay.
type ProductForm struct {
	CategoryID  string `form:"category" validate:"required"`
	Name        string `form:"name" validate:"required,max=128"`
	ShortDesc   string `form:"short_desc" validate:"max=60"`
	Description string `form:"description" validate:"max=5000"`
	Price       string `form:"price" validate:"required,numeric"`
	Image       string `form:"-"`
}

// Validate valida el formulario; el precio debe ser >= 0 con a lo sumo 2 decimales.
func (f *ProductForm) Validate() error {
	f.CategoryID = strings.TrimSpace(f.CategoryID)
	f.Name = strings.TrimSpace(f.Name)
	f.ShortDesc = strings.TrimSpace(f.ShortDesc)
	f.Description = strings.TrimSpace(f.Description)
	f.Price = strings.TrimSpace(f.Price)
	ve := validateStruct(f)
	if _, ok := ve.Fields["price"]; !ok {
		p, err := decimal.NewFromString(f.Price)
		switch {
		case err != nil:
			ve.Add("price", "introduzca un número")
		case p.IsNegative():
			ve.Add("price", "el precio no puede ser negativo")
		case p.Exponent() < -2 && !p.Equal(p.Round(2)):
			ve.Add("price", "máximo 2 decimales")
		case p.GreaterThanOrEqual(maxPrice):
			ve.Add("price", "precio demasiado alto")
		}
	}
	return ve.OrNil()
}

// ParsedPrice precio como decimal. Llamar después de Validate.
func (f *ProductForm) ParsedPrice() decimal.Decimal {
	p, err := decimal.NewFromString(f.Price)
	if err != nil {
		return decimal.Zero
	}
	return p.Round(2)
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string
	CategoryID  string
	Name        string
	ShortDesc   string
	Description string
	Price       decimal.Decimal
	Image       string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Form devuelve el formulario de edición precargado.
func (p *ProductResponse) Form() ProductForm {
	return ProductForm{
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		ShortDesc:   p.ShortDesc,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Image:       p.Image,
	}
}
