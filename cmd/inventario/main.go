package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/transfer"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	infrapdf "github.com/jhoicas/inventario-local/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-local/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-local/internal/interfaces/cli"
	"github.com/jhoicas/inventario-local/pkg/config"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		return 1
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Debug().
		Str("env", cfg.App.Env).
		Str("db", cfg.DB.Path).
		Msg("iniciando aplicación")

	// Ctrl+C detiene "watch" y cancela cualquier consulta en curso
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(ctx, cfg.DB, log)
	if err != nil {
		log.Error().Err(err).Msg("abrir base SQLite")
		return 1
	}
	defer func() {
		if err := sqlite.Close(db); err != nil {
			log.Error().Err(err).Msg("cerrar base SQLite")
		}
	}()

	userRepo := sqlite.NewUserRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	movementRepo := sqlite.NewMovementRepository(db)
	txRunner := sqlite.NewTxRunner(db)

	csvUC, err := transfer.NewCSVUseCase(productRepo, txRunner, cfg.CSV.Encoding, log)
	if err != nil {
		log.Error().Err(err).Msg("configurar CSV")
		return 1
	}

	app := cli.New(cli.Deps{
		AuthUC:           auth.NewAuthUseCase(userRepo, log),
		ProductUC:        usecase.NewProductUseCase(productRepo, txRunner, log),
		RegisterMovement: inventory.NewRegisterMovementUseCase(txRunner, movementRepo, log),
		Transfer:         csvUC,
		Report:           infrapdf.NewMarotoStockReportGenerator("Reporte de stock"),
		LowStockInterval: cfg.LowStock.Interval,
		Log:              log,
		Out:              os.Stdout,
		Err:              os.Stderr,
	})

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		return 1
	}
	return 0
}
