// Package sqlite implementa los puertos de persistencia sobre una base SQLite embebida (GORM).
package sqlite

import (
	"context"
	"fmt"

	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// Open abre la base embebida, verifica la conexión y aplica las migraciones pendientes.
// El archivo se crea si no existe.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlitedriver.Open(cfg.DSN()), &gorm.Config{
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("obtener sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if err := Migrate(ctx, db, log); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Debug().Str("path", cfg.Path).Msg("base de datos lista")
	return db, nil
}

// Close libera las conexiones subyacentes.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
