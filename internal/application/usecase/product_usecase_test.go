package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-local/internal/infrastructure/sqlite/sqlitetest"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

func newUseCases(t *testing.T) (*usecase.ProductUseCase, *inventory.RegisterMovementUseCase) {
	t.Helper()
	db := sqlitetest.Open(t)
	tx := sqlite.NewTxRunner(db)
	movs := sqlite.NewMovementRepository(db)
	return usecase.NewProductUseCase(sqlite.NewProductRepository(db), tx, logger.Nop()),
		inventory.NewRegisterMovementUseCase(tx, movs, logger.Nop())
}

func TestProductUseCase_CreateYGet(t *testing.T) {
	ctx := context.Background()
	products, _ := newUseCases(t)

	id, err := products.Create(ctx, dto.CreateProductRequest{Name: "Pen", Description: "Blue ink", Quantity: 10, MinimumThreshold: 5})
	require.NoError(t, err)
	assert.Positive(t, id)

	p, err := products.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Pen", p.Name)
	assert.Equal(t, "Blue ink", p.Description)
	assert.EqualValues(t, 10, p.Quantity)
	assert.EqualValues(t, 5, p.MinimumThreshold)
	assert.False(t, p.IsLowStock())

	missing, err := products.GetByID(ctx, id+100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestProductUseCase_NombresRepetidos(t *testing.T) {
	ctx := context.Background()
	products, _ := newUseCases(t)

	a, err := products.Create(ctx, dto.CreateProductRequest{Name: "Pen"})
	require.NoError(t, err)
	b, err := products.Create(ctx, dto.CreateProductRequest{Name: "Pen"})
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	list, err := products.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestProductUseCase_SetQuantityRawNoCreaMovimiento(t *testing.T) {
	ctx := context.Background()
	products, movements := newUseCases(t)
	id, err := products.Create(ctx, dto.CreateProductRequest{Name: "Pen", Quantity: 10, MinimumThreshold: 5})
	require.NoError(t, err)

	assert.True(t, products.SetQuantityRaw(ctx, id, 2))
	p, err := products.GetByID(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 2, p.Quantity)

	list, err := movements.ListMovements(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	low, err := products.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, id, low[0].ID)

	assert.False(t, products.SetQuantityRaw(ctx, 9999, 1))
}

func TestProductUseCase_DeleteSinHistorial(t *testing.T) {
	ctx := context.Background()
	products, _ := newUseCases(t)
	id, err := products.Create(ctx, dto.CreateProductRequest{Name: "Pen"})
	require.NoError(t, err)

	ok, err := products.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = products.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok, "un producto inexistente no se elimina")
}

func TestProductUseCase_DeleteConHistorialSeRechaza(t *testing.T) {
	ctx := context.Background()
	products, movements := newUseCases(t)
	id, err := products.Create(ctx, dto.CreateProductRequest{Name: "Pen", Quantity: 10})
	require.NoError(t, err)
	require.NoError(t, movements.RegisterMovement(ctx, inventory.MovementInputDTO{
		ProductID: id, Type: entity.MovementTypeOUT, Quantity: 1, Responsible: "alice",
	}))

	ok, err := products.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	p, err := products.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, p, "el producto debe seguir existiendo")

	list, err := movements.ListMovements(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
