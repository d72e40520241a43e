package inventory

import (
	"context"

	"github.com/jhoicas/inventario-local/internal/application/dto"
)

// RegisterMovementFromRequest adapta el request del CLI al caso de uso RegisterMovement.
// responsible es el nombre del usuario autenticado.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, responsible string, in dto.RecordMovementRequest) error {
	input := MovementInputDTO{
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Responsible: responsible,
		Reason:      in.Reason,
	}
	return uc.RegisterMovement(ctx, input)
}
