package entity

import "time"

// ProductCategory categoría de productos. La baja es lógica (IsActive = false).
type ProductCategory struct {
	ID          string
	Name        string // único
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
