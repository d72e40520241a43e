package usecase

import (
	"context"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// ProductUseCase casos de uso del catálogo. La cantidad cambia por movimientos (ledger)
// o por SetQuantityRaw, que corrige sin dejar asiento.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner inventory.TxRunner
	log      *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner inventory.TxRunner, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner, log: log}
}

// Create inserta un producto sin verificar nombres repetidos y devuelve su ID.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (int64, error) {
	product := &entity.Product{
		Name:             in.Name,
		Description:      in.Description,
		Quantity:         in.Quantity,
		MinimumThreshold: in.MinimumThreshold,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return 0, err
	}
	uc.log.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("producto creado")
	return product.ID, nil
}

// GetByID obtiene un producto por ID. nil,nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.repo.GetByID(ctx, id)
}

// List lista productos; con filter no vacío, solo los que contienen filter en el nombre.
func (uc *ProductUseCase) List(ctx context.Context, filter string) ([]*entity.Product, error) {
	return uc.repo.List(ctx, filter)
}

// LowStock lista productos con cantidad estrictamente menor al mínimo.
func (uc *ProductUseCase) LowStock(ctx context.Context) ([]*entity.Product, error) {
	return uc.repo.ListLowStock(ctx)
}

// SetQuantityRaw sobrescribe la cantidad sin registrar movimiento. Devuelve false si el producto
// no existe o si la base falla; la falla se registra en el log y no se propaga.
func (uc *ProductUseCase) SetQuantityRaw(ctx context.Context, id, quantity int64) bool {
	ok, err := uc.repo.SetQuantity(ctx, id, quantity)
	if err != nil {
		uc.log.Error().Err(err).Int64("product_id", id).Msg("error al actualizar cantidad")
		return false
	}
	if ok {
		uc.log.Info().Int64("product_id", id).Int64("quantity", quantity).Msg("cantidad corregida sin movimiento")
	}
	return ok
}

// Delete elimina un producto solo si ningún movimiento lo referencia. La verificación y el
// borrado corren en la misma transacción. Devuelve false si tiene historial o no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	deleted := false
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		n, err := movRepo.CountByProduct(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			uc.log.Info().Int64("product_id", id).Int64("movements", n).Msg("producto con historial, no se elimina")
			return nil
		}
		deleted, err = productRepo.Delete(ctx, id)
		return err
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
