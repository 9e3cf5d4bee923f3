package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-admin/internal/domain"
	"github.com/jhoicas/catalog-admin/internal/domain/entity"
	"github.com/jhoicas/catalog-admin/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, category_id, name, short_desc, description, price, image, is_active, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CategoryID, p.Name, p.ShortDesc, p.Description, p.Price, p.Image, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert product: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if !validID(id) {
		return nil, nil
	}
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza un producto existente (incluido el toggle de is_active).
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	if !validID(p.ID) {
		return fmt.Errorf("update product: %w", domain.ErrNotFound)
	}
	query := `
		UPDATE products SET category_id = $2, name = $3, short_desc = $4, description = $5,
			price = $6, image = $7, is_active = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.CategoryID, p.Name, p.ShortDesc, p.Description, p.Price, p.Image, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("update product: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update product: %w", domain.ErrNotFound)
	}
	return nil
}

// ListByCategory lista los productos de una categoría ordenados por nombre.
func (r *ProductRepo) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	if !validID(categoryID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE category_id = $1 ORDER BY name, id`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ApplyCategoryDiscount rebaja en un único UPDATE el precio de todos los productos de la categoría.
// Redondea a 2 decimales igual que pricing.ApplyDiscount.
func (r *ProductRepo) ApplyCategoryDiscount(ctx context.Context, categoryID string, percent decimal.Decimal) (int64, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE products SET price = ROUND(price * (1 - $2::numeric / 100), 2), updated_at = now()
		WHERE category_id = $1`,
		categoryID, percent,
	)
	if err != nil {
		return 0, fmt.Errorf("apply category discount: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.ShortDesc, &p.Description, &p.Price, &p.Image,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}
