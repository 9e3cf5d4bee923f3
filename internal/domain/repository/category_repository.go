package repository

import (
	"context"

	"github.com/jhoicas/catalog-admin/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para ProductCategory (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.ProductCategory) error
	GetByID(ctx context.Context, id string) (*entity.ProductCategory, error)
	GetByName(ctx context.Context, name string) (*entity.ProductCategory, error)
	// Update devuelve domain.ErrNotFound si la fila ya no existe.
	Update(ctx context.Context, category *entity.ProductCategory) error
	List(ctx context.Context) ([]*entity.ProductCategory, error)
}
