package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-admin/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Update devuelve domain.ErrNotFound si la fila ya no existe.
	Update(ctx context.Context, product *entity.Product) error
	// ListByCategory productos de la categoría (activos e inactivos) ordenados por nombre.
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)
	// ApplyCategoryDiscount rebaja en bloque el precio de todos los productos de la
	// categoría en percent %. Devuelve cuántas filas se actualizaron.
	ApplyCategoryDiscount(ctx context.Context, categoryID string, percent decimal.Decimal) (int64, error)
}
