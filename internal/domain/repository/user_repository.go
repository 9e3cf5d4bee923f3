package repository

import (
	"context"

	"github.com/jhoicas/catalog-admin/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get* devuelven (nil, nil) si no existe la fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Update devuelve domain.ErrNotFound si la fila ya no existe.
	Update(ctx context.Context, user *entity.User) error
	// List devuelve todos los usuarios en orden de directorio:
	// activos, superusuarios y staff primero, luego por username.
	List(ctx context.Context) ([]*entity.User, error)
}
