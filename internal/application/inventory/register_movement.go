package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// RegisterMovementUseCase registra entradas y salidas de stock. Cada movimiento ajusta la cantidad
// del producto y agrega el asiento al ledger dentro de la misma transacción.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
	now      Clock
	log      *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	movRepo repository.MovementRepository,
	log *logger.Logger,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner: txRunner,
		movRepo:  movRepo,
		now:      time.Now,
		log:      log,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *RegisterMovementUseCase) WithClock(c Clock) *RegisterMovementUseCase {
	uc.now = c
	return uc
}

// MovementInputDTO entrada para registrar un movimiento.
// Quantity no se valida: una salida puede dejar la cantidad en negativo.
type MovementInputDTO struct {
	ProductID   int64
	Type        string // IN | OUT
	Quantity    int64
	Responsible string
	Reason      string
}

// RegisterMovement inicia una transacción, ajusta la cantidad (+ en IN, - en OUT),
// guarda el movimiento y hace Commit o Rollback.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInputDTO) error {
	if !entity.IsValidMovementType(input.Type) {
		return domain.ErrInvalidInput
	}

	mov := &entity.Movement{
		ProductID:     input.ProductID,
		Type:          input.Type,
		Quantity:      input.Quantity,
		Date:          uc.now().UTC().Truncate(time.Second),
		Responsible:   input.Responsible,
		Reason:        input.Reason,
		TransactionID: uuid.New().String(),
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Primero el ajuste: si el producto no existe no queda asiento huérfano.
		ok, err := productRepo.AddQuantity(ctx, input.ProductID, mov.SignedQuantity())
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrNotFound
		}
		return movRepo.Create(ctx, mov)
	})
	if err != nil {
		return err
	}

	uc.log.Info().
		Int64("product_id", mov.ProductID).
		Str("type", mov.Type).
		Int64("quantity", mov.Quantity).
		Str("responsible", mov.Responsible).
		Str("tx_id", mov.TransactionID).
		Msg("movimiento registrado")
	return nil
}

// ListMovements devuelve el ledger completo con el nombre del producto, más recientes primero.
func (uc *RegisterMovementUseCase) ListMovements(ctx context.Context) ([]*entity.Movement, error) {
	return uc.movRepo.List(ctx)
}
