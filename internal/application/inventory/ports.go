package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que el ajuste de cantidad y el asiento en el ledger se confirmen juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// Clock devuelve la hora actual; inyectable para tests.
type Clock func() time.Time
