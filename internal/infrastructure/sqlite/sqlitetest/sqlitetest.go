// Package sqlitetest abre bases SQLite en memoria, aisladas por test y ya migradas.
package sqlitetest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jhoicas/inventario-local/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// Open devuelve una base nueva; se cierra al terminar el test.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.Open(context.Background(), config.DBConfig{
		Path:     uuid.NewString(),
		InMemory: true,
	}, logger.Nop())
	require.NoError(t, err, "debe abrirse la base en memoria")

	t.Cleanup(func() { _ = sqlite.Close(db) })
	return db
}
