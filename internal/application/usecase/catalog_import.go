package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

// CatalogImportUseCase carga categorías y productos en bloque (seed de catálogo).
type CatalogImportUseCase struct {
	categories *CategoryUseCase
	products   *ProductUseCase
	log        *logger.Logger
}

// NewCatalogImportUseCase construye el caso de uso sobre los de categorías y productos.
func NewCatalogImportUseCase(categories *CategoryUseCase, products *ProductUseCase, log *logger.Logger) *CatalogImportUseCase {
	return &CatalogImportUseCase{categories: categories, products: products, log: log.Component("catalog_import")}
}

// Import crea las categorías que falten (por nombre) y un producto por fila.
// Se detiene en la primera fila inválida; las filas anteriores quedan guardadas.
func (uc *CatalogImportUseCase) Import(ctx context.Context, rows []dto.CatalogRow) (*dto.ImportResult, error) {
	existing, err := uc.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]string, len(existing))
	for _, c := range existing {
		byName[c.Name] = c.ID
	}

	res := &dto.ImportResult{}
	for _, row := range rows {
		categoryID, ok := byName[row.Category]
		if !ok {
			created, err := uc.categories.Create(ctx, dto.CategoryForm{Name: row.Category})
			if err != nil {
				return res, fmt.Errorf("línea %d: categoría %q: %w", row.Line, row.Category, err)
			}
			categoryID = created.ID
			byName[created.Name] = created.ID
			res.CategoriesCreated++
		}
		_, err := uc.products.Create(ctx, categoryID, dto.ProductForm{
			CategoryID:  categoryID,
			Name:        row.Name,
			ShortDesc:   row.ShortDesc,
			Description: row.Description,
			Price:       row.Price,
		})
		if err != nil {
			return res, fmt.Errorf("línea %d: producto %q: %w", row.Line, row.Name, err)
		}
		res.ProductsCreated++
	}
	uc.log.Info().
		Int("categories", res.CategoriesCreated).
		Int("products", res.ProductsCreated).
		Msg("catálogo importado")
	return res, nil
}
