package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-admin/internal/domain/pricing"
)

// CategoryForm formulario de categoría. Discount no se persiste: si es distinto de
// cero rebaja los precios de la categoría al guardar.
type CategoryForm struct {
	Name        string `form:"name" validate:"required,max=64"`
	Description string `form:"description" validate:"max=1000"`
	IsActive    bool   `form:"is_active"`
	Discount    string `form:"discount" validate:"omitempty,numeric"`
}

// Validate valida el formulario y el rango del descuento.
func (f *CategoryForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.Discount = strings.TrimSpace(f.Discount)
	ve := validateStruct(f)
	if _, ok := ve.Fields["discount"]; !ok && f.Discount != "" {
		d, err := decimal.NewFromString(f.Discount)
		if err != nil || !pricing.ValidDiscount(d) {
			ve.Add("discount", "el descuento debe estar entre 0 y 100")
		}
	}
	return ve.OrNil()
}

// DiscountPercent descuento solicitado (cero si no se informó). Llamar después de Validate.
func (f *CategoryForm) DiscountPercent() decimal.Decimal {
	if f.Discount == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(f.Discount)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Form devuelve el formulario de edición precargado.
func (c *CategoryResponse) Form() CategoryForm {
	return CategoryForm{Name: c.Name, Description: c.Description, IsActive: c.IsActive}
}

// CategoryUpdateResult resultado de guardar una categoría (incluye la rebaja aplicada).
type CategoryUpdateResult struct {
	Category         CategoryResponse
	Discount         decimal.Decimal
	ProductsRepriced int64
}
