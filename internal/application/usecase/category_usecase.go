package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
	"github.com/jhoicas/catalog-admin/pkg/logger"
)

const msgCategoryTaken = "ya existe una categoría con ese nombre"

// CategoryUseCase casos de uso del directorio de categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
	tx   CatalogTxRunner
	log  *logger.Logger
}

// NewCategoryUseCase construye el caso de uso. tx garantiza que la rebaja de precios
// y el guardado de la categoría se confirmen juntos.
func NewCategoryUseCase(repo repository.CategoryRepository, tx CatalogTxRunner, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, tx: tx, log: log.Component("categories")}
}

// List devuelve todas las categorías (activas e inactivas) ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// GetByID obtiene una categoría o ErrNotFound.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := findCategory(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Create da de alta una categoría activa. El descuento no aplica en el alta.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryForm) (*dto.CategoryResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := uc.ensureUniqueName(ctx, in.Name, ""); err != nil {
		return nil, err
	}
	now := time.Now()
	category := &entity.ProductCategory{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewValidationError("name", msgCategoryTaken)
		}
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Update guarda la categoría. Si el formulario trae un descuento distinto de cero,
// primero rebaja en bloque el precio de todos sus productos; ambas escrituras van
// en la misma transacción.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryForm) (*dto.CategoryUpdateResult, error) {
	category, err := findCategory(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := uc.ensureUniqueName(ctx, in.Name, category.ID); err != nil {
		return nil, err
	}
	category.Name = in.Name
	category.Description = in.Description
	category.IsActive = in.IsActive
	category.UpdatedAt = time.Now()

	discount := in.DiscountPercent()
	var repriced int64
	err = uc.tx.RunCatalog(ctx, func(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) error {
		if !discount.IsZero() {
			n, err := productRepo.ApplyCategoryDiscount(ctx, category.ID, discount)
			if err != nil {
				return err
			}
			repriced = n
		}
		return categoryRepo.Update(ctx, category)
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.NewValidationError("name", msgCategoryTaken)
		}
		return nil, fmt.Errorf("actualizar categoría: %w", err)
	}
	if !discount.IsZero() {
		uc.log.Info().
			Str("category_id", category.ID).
			Str("discount", discount.String()).
			Int64("products", repriced).
			Msg("descuento aplicado a la categoría")
	}
	return &dto.CategoryUpdateResult{
		Category:         *toCategoryResponse(category),
		Discount:         discount,
		ProductsRepriced: repriced,
	}, nil
}

// Deactivate baja lógica de la categoría (IsActive = false); sus productos no cambian.
func (uc *CategoryUseCase) Deactivate(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := findCategory(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if category.IsActive {
		category.IsActive = false
		category.UpdatedAt = time.Now()
		if err := uc.repo.Update(ctx, category); err != nil {
			return nil, err
		}
	}
	return toCategoryResponse(category), nil
}

func (uc *CategoryUseCase) ensureUniqueName(ctx context.Context, name, selfID string) error {
	other, err := uc.repo.GetByName(ctx, name)
	if err != nil {
		return err
	}
	if other != nil && other.ID != selfID {
		return domain.NewValidationError("name", msgCategoryTaken)
	}
	return nil
}

func findCategory(ctx context.Context, repo repository.CategoryRepository, id string) (*entity.ProductCategory, error) {
	category, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

func toCategoryResponse(c *entity.ProductCategory) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
