package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria de CategoryRepository.
type CategoryRepo struct {
	s *Store
}

func (r *CategoryRepo) Create(_ context.Context, category *entity.ProductCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[category.ID]; ok || r.nameTaken(category.Name, category.ID) {
		return fmt.Errorf("insert category: %w", domain.ErrDuplicate)
	}
	r.s.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.ProductCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *CategoryRepo) GetByName(_ context.Context, name string) (*entity.ProductCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.categories {
		if c.Name == name {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepo) Update(_ context.Context, category *entity.ProductCategory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[category.ID]; !ok {
		return fmt.Errorf("update category: %w", domain.ErrNotFound)
	}
	if r.nameTaken(category.Name, category.ID) {
		return fmt.Errorf("update category: %w", domain.ErrDuplicate)
	}
	r.s.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.ProductCategory, error) {
	r.s.mu.RLock()
	list := make([]*entity.ProductCategory, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		c := c
		list = append(list, &c)
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

func (r *CategoryRepo) nameTaken(name, selfID string) bool {
	for id, c := range r.s.categories {
		if id != selfID && c.Name == name {
			return true
		}
	}
	return false
}
