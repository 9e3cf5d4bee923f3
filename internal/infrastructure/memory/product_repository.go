package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/pricing"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria de ProductRepository.
type ProductRepo struct {
	s *Store
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; ok {
		return fmt.Errorf("insert product: %w", domain.ErrDuplicate)
	}
	if _, ok := r.s.categories[product.CategoryID]; !ok {
		return fmt.Errorf("insert product: categoría inexistente: %w", domain.ErrInvalidInput)
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return fmt.Errorf("update product: %w", domain.ErrNotFound)
	}
	if _, ok := r.s.categories[product.CategoryID]; !ok {
		return fmt.Errorf("update product: categoría inexistente: %w", domain.ErrInvalidInput)
	}
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) ListByCategory(_ context.Context, categoryID string) ([]*entity.Product, error) {
	r.s.mu.RLock()
	var list []*entity.Product
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			p := p
			list = append(list, &p)
		}
	}
	r.s.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Name != list[j].Name {
			return list[i].Name < list[j].Name
		}
		return list[i].ID < list[j].ID
	})
	return list, nil
}

func (r *ProductRepo) ApplyCategoryDiscount(_ context.Context, categoryID string, percent decimal.Decimal) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	now := time.Now()
	for id, p := range r.s.products {
		if p.CategoryID != categoryID {
			continue
		}
		p.Price = pricing.ApplyDiscount(p.Price, percent)
		p.UpdatedAt = now
		r.s.products[id] = p
		n++
	}
	return n, nil
}
