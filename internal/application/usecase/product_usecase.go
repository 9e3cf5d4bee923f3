package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La baja es lógica (toggle de IsActive).
type ProductUseCase struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, categoryRepo: categoryRepo}
}

// ListByCategory devuelve la categoría y sus productos ordenados por nombre.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, categoryID string) (*dto.CategoryResponse, []dto.ProductResponse, error) {
	category, err := findCategory(ctx, uc.categoryRepo, categoryID)
	if err != nil {
		return nil, nil, err
	}
	list, err := uc.repo.ListByCategory(ctx, category.ID)
	if err != nil {
		return nil, nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return toCategoryResponse(category), items, nil
}

// Create da de alta un producto bajo la categoría parentID (ErrNotFound si no existe).
// La categoría del formulario debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, parentID string, in dto.ProductForm) (*dto.ProductResponse, error) {
	if _, err := findCategory(ctx, uc.categoryRepo, parentID); err != nil {
		return nil, err
	}
	if err := uc.Validate(ctx, &in); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Name:        in.Name,
		ShortDesc:   in.ShortDesc,
		Description: in.Description,
		Price:       in.ParsedPrice(),
		Image:       in.Image,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto o ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. Sin imagen nueva se conserva la actual; IsActive no cambia.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductForm) (*dto.ProductResponse, error) {
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.Validate(ctx, &in); err != nil {
		return nil, err
	}
	product.CategoryID = in.CategoryID
	product.Name = in.Name
	product.ShortDesc = in.ShortDesc
	product.Description = in.Description
	product.Price = in.ParsedPrice()
	if in.Image != "" {
		product.Image = in.Image
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ToggleActive invierte IsActive (baja/alta lógica). Dos llamadas restauran el estado.
func (uc *ProductUseCase) ToggleActive(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	product.ToggleActive()
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Validate valida el formulario y que su categoría exista. Create y Update lo repiten.
func (uc *ProductUseCase) Validate(ctx context.Context, in *dto.ProductForm) error {
	if err := in.Validate(); err != nil {
		return err
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.NewValidationError("category", "seleccione una categoría válida")
	}
	return nil
}

func (uc *ProductUseCase) find(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		CategoryID:  p.CategoryID,
		Name:        p.Name,
		ShortDesc:   p.ShortDesc,
		Description: p.Description,
		Price:       p.Price,
		Image:       p.Image,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
