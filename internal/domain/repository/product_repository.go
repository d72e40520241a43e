package repository

import (
	"context"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// List filtra por substring del nombre (sensible a mayúsculas) cuando nameFilter no es vacío.
	List(ctx context.Context, nameFilter string) ([]*entity.Product, error)
	ListLowStock(ctx context.Context) ([]*entity.Product, error)
	// SetQuantity sobrescribe la cantidad sin pasar por el ledger. Devuelve false si no hubo fila.
	SetQuantity(ctx context.Context, id, quantity int64) (bool, error)
	// AddQuantity suma delta (puede ser negativo). Devuelve false si no hubo fila.
	AddQuantity(ctx context.Context, id, delta int64) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
