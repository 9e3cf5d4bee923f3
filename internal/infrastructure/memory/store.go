// Package memory implementa los puertos de persistencia en memoria
// (STORE_DRIVER=memory y tests). Replica las restricciones de la base:
// unicidad de username y nombre de categoría, FK producto -> categoría.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/catalog-admin/internal/application/usecase"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

// Store datos compartidos por los repositorios en memoria.
type Store struct {
	mu         sync.RWMutex
	txMu       sync.Mutex
	users      map[string]entity.User
	categories map[string]entity.ProductCategory
	products   map[string]entity.Product
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:      make(map[string]entity.User),
		categories: make(map[string]entity.ProductCategory),
		products:   make(map[string]entity.Product),
	}
}

// Users repositorio de usuarios sobre el almacén.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Categories repositorio de categorías sobre el almacén.
func (s *Store) Categories() *CategoryRepo { return &CategoryRepo{s: s} }

// Products repositorio de productos sobre el almacén.
func (s *Store) Products() *ProductRepo { return &ProductRepo{s: s} }

// TxRunner runner transaccional sobre el almacén.
func (s *Store) TxRunner() *TxRunner { return &TxRunner{s: s} }

var _ usecase.CatalogTxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones de catálogo y restaura categorías y productos
// si fn falla. Escrituras concurrentes fuera de la tx pueden perderse en un rollback.
type TxRunner struct {
	s *Store
}

// RunCatalog ejecuta fn; ante error deshace sus escrituras.
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	r.s.mu.RLock()
	categories := make(map[string]entity.ProductCategory, len(r.s.categories))
	for k, v := range r.s.categories {
		categories[k] = v
	}
	products := make(map[string]entity.Product, len(r.s.products))
	for k, v := range r.s.products {
		products[k] = v
	}
	r.s.mu.RUnlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(r.s.Categories(), r.s.Products()); err != nil {
		r.s.mu.Lock()
		r.s.categories = categories
		r.s.products = products
		r.s.mu.Unlock()
		return err
	}
	return nil
}
