package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-local/internal/infrastructure/sqlite/sqlitetest"
	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Migraciones
// ──────────────────────────────────────────────────────────────────────────────

func TestMigrate_EsIdempotente(t *testing.T) {
	db := sqlitetest.Open(t)

	require.NoError(t, sqlite.Migrate(context.Background(), db, logger.Nop()))
	require.NoError(t, sqlite.Migrate(context.Background(), db, logger.Nop()))

	for _, table := range []string{"users", "products", "movements"} {
		assert.True(t, db.Migrator().HasTable(table), "debe existir la tabla %s", table)
	}
}

func TestOpen_RutaConCaracteresDeURI(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	openAt := func(name string) *sqlite.ProductRepo {
		db, err := sqlite.Open(ctx, config.DBConfig{Path: filepath.Join(dir, name)}, logger.Nop())
		require.NoError(t, err)
		t.Cleanup(func() { _ = sqlite.Close(db) })
		return sqlite.NewProductRepository(db)
	}

	first := openAt("a#b.db")
	require.NoError(t, first.Create(ctx, &entity.Product{Name: "Pen", Quantity: 1}))

	second := openAt("a#c.db")
	list, err := second.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, list, "rutas distintas no deben compartir base")

	third := openAt("q?x%.db")
	require.NoError(t, third.Create(ctx, &entity.Product{Name: "Lápis", Quantity: 2}))

	for _, name := range []string{"a#b.db", "a#c.db", "q?x%.db"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "debe existir el archivo %s", name)
	}
	for _, name := range []string{"a", "q"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.True(t, os.IsNotExist(err), "no debe crearse el archivo truncado %s", name)
	}

	list, err = first.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pen", list[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUserRepo_NombreDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewUserRepository(sqlitetest.Open(t))

	require.NoError(t, repo.Create(ctx, &entity.User{Name: "alice", Secret: "s1", Role: "admin"}))
	err := repo.Create(ctx, &entity.User{Name: "alice", Secret: "otro", Role: "operador"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	u, err := repo.FindByCredentials(ctx, "alice", "s1")
	require.NoError(t, err)
	require.NotNil(t, u, "el registro original no debe sobrescribirse")
	assert.Equal(t, "admin", u.Role)
}

func TestUserRepo_FindByCredentials_Exacto(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewUserRepository(sqlitetest.Open(t))
	require.NoError(t, repo.Create(ctx, &entity.User{Name: "alice", Secret: "Secret", Role: "admin"}))

	cases := []struct{ name, secret string }{
		{"Alice", "Secret"},
		{"alice", "secret"},
		{"alice ", "Secret"},
		{"alice", ""},
	}
	for _, c := range cases {
		u, err := repo.FindByCredentials(ctx, c.name, c.secret)
		require.NoError(t, err)
		assert.Nil(t, u, "no debe coincidir %q/%q", c.name, c.secret)
	}

	u, err := repo.FindByCredentials(ctx, "alice", "Secret")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Positive(t, u.ID)
	assert.Equal(t, "alice", u.Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func seedProducts(t *testing.T, repo repository.ProductRepository, products ...*entity.Product) {
	t.Helper()
	for _, p := range products {
		require.NoError(t, repo.Create(context.Background(), p))
		require.Positive(t, p.ID)
	}
}

func TestProductRepo_ListFiltroSensibleAMayusculas(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewProductRepository(sqlitetest.Open(t))
	seedProducts(t, repo,
		&entity.Product{Name: "Caneta azul", Quantity: 1},
		&entity.Product{Name: "caneta preta", Quantity: 1},
		&entity.Product{Name: "Lápis", Quantity: 1},
	)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := repo.List(ctx, "Caneta")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Caneta azul", filtered[0].Name)

	none, err := repo.List(ctx, "borracha")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductRepo_NombresRepetidosPermitidos(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewProductRepository(sqlitetest.Open(t))
	a := &entity.Product{Name: "Pen", Quantity: 1}
	b := &entity.Product{Name: "Pen", Quantity: 2}
	seedProducts(t, repo, a, b)

	assert.NotEqual(t, a.ID, b.ID)
	list, err := repo.List(ctx, "Pen")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestProductRepo_ListLowStockEstricto(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewProductRepository(sqlitetest.Open(t))
	below := &entity.Product{Name: "abaixo", Quantity: 4, MinimumThreshold: 5}
	equal := &entity.Product{Name: "igual", Quantity: 5, MinimumThreshold: 5}
	above := &entity.Product{Name: "acima", Quantity: 6, MinimumThreshold: 5}
	seedProducts(t, repo, below, equal, above)

	low, err := repo.ListLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, below.ID, low[0].ID)
}

func TestProductRepo_SetAddDelete(t *testing.T) {
	ctx := context.Background()
	repo := sqlite.NewProductRepository(sqlitetest.Open(t))
	p := &entity.Product{Name: "Pen", Description: "Blue ink", Quantity: 10}
	seedProducts(t, repo, p)

	ok, err := repo.SetQuantity(ctx, p.ID, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.AddQuantity(ctx, p.ID, -5)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.EqualValues(t, -2, got.Quantity, "no hay piso en cero")
	assert.Equal(t, "Blue ink", got.Description)

	ok, err = repo.SetQuantity(ctx, 9999, 1)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos y TxRunner
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementRepo_ListOrdenadoConNombre(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	products := sqlite.NewProductRepository(db)
	movs := sqlite.NewMovementRepository(db)
	p := &entity.Product{Name: "Pen", Quantity: 10}
	seedProducts(t, products, p)

	base := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	older := &entity.Movement{ProductID: p.ID, Type: entity.MovementTypeIN, Quantity: 1, Date: base, Responsible: "alice"}
	newer := &entity.Movement{ProductID: p.ID, Type: entity.MovementTypeOUT, Quantity: 2, Date: base.Add(time.Hour), Responsible: "bob", Reason: "Venda"}
	require.NoError(t, movs.Create(ctx, older))
	require.NoError(t, movs.Create(ctx, newer))

	list, err := movs.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, "Pen", list[0].ProductName)
	assert.Equal(t, "Venda", list[0].Reason)
	assert.True(t, list[0].Date.Equal(base.Add(time.Hour)))
	assert.Equal(t, older.ID, list[1].ID)

	n, err := movs.CountByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestMovementRepo_ProductoInexistenteViolaFK(t *testing.T) {
	movs := sqlite.NewMovementRepository(sqlitetest.Open(t))

	err := movs.Create(context.Background(), &entity.Movement{
		ProductID: 404, Type: entity.MovementTypeIN, Quantity: 1, Date: time.Now(), Responsible: "alice",
	})
	assert.Error(t, err)
}

func TestTxRunner_RollbackEnError(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	products := sqlite.NewProductRepository(db)
	p := &entity.Product{Name: "Pen", Quantity: 10}
	seedProducts(t, products, p)

	err := sqlite.NewTxRunner(db).Run(ctx, func(_ repository.MovementRepository, productRepo repository.ProductRepository) error {
		if _, err := productRepo.AddQuantity(ctx, p.ID, 5); err != nil {
			return err
		}
		return domain.ErrInvalidInput
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 10, got.Quantity, "el ajuste debe revertirse")
}

func TestTxRunner_RunProductsConfirma(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)

	err := sqlite.NewTxRunner(db).RunProducts(ctx, func(productRepo repository.ProductRepository) error {
		return productRepo.Create(ctx, &entity.Product{Name: "Pen", Quantity: 1})
	})
	require.NoError(t, err)

	list, err := sqlite.NewProductRepository(db).List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
