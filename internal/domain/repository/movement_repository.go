package repository

import (
	"context"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// MovementRepository define el puerto del ledger. Solo permite agregar y leer.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// List devuelve los movimientos con el nombre del producto, más recientes primero.
	List(ctx context.Context) ([]*entity.Movement, error)
	CountByProduct(ctx context.Context, productID int64) (int64, error)
}
