package usecase

import (
	"context"

	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

// CatalogTxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Si fn devuelve error no se confirma ninguna escritura.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		productRepo repository.ProductRepository,
	) error) error
}
