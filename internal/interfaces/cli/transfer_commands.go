package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

func (a *App) exportCSV(ctx context.Context, args []string) error {
	fs := a.flagSet("export")
	creds := credentialFlags(fs)
	out := fs.String("out", "estoque.csv", "archivo CSV de destino")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := a.authenticate(ctx, creds); err != nil {
		return err
	}

	if err := a.deps.Transfer.Export(ctx, *out); err != nil {
		return err
	}
	fmt.Fprintf(a.deps.Out, "stock exportado a %s\n", *out)
	return nil
}

func (a *App) importCSV(ctx context.Context, args []string) error {
	fs := a.flagSet("import")
	creds := credentialFlags(fs)
	in := fs.String("in", "", "archivo CSV de origen")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := a.authenticate(ctx, creds); err != nil {
		return err
	}
	if *in == "" {
		fmt.Fprintln(a.deps.Err, "falta -in")
		return ErrUsage
	}

	n, err := a.deps.Transfer.Import(ctx, *in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.deps.Out, "%d productos importados desde %s\n", n, *in)
	return nil
}

func (a *App) report(ctx context.Context, args []string) error {
	fs := a.flagSet("report")
	creds := credentialFlags(fs)
	out := fs.String("out", "estoque.pdf", "archivo PDF de destino")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := a.authenticate(ctx, creds); err != nil {
		return err
	}

	products, err := a.deps.ProductUC.List(ctx, "")
	if err != nil {
		return err
	}
	pdf, err := a.deps.Report.GenerateStockReport(ctx, products, a.now())
	if err != nil {
		return fmt.Errorf("generar reporte: %w", err)
	}
	if err := os.WriteFile(*out, pdf, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", *out, err)
	}
	a.deps.Log.Info().Str("path", *out).Int("products", len(products)).Msg("reporte de stock generado")
	fmt.Fprintf(a.deps.Out, "reporte escrito en %s\n", *out)
	return nil
}

// watch bloquea hasta que ctx se cancele (Ctrl+C en main).
func (a *App) watch(ctx context.Context, args []string) error {
	fs := a.flagSet("watch")
	creds := credentialFlags(fs)
	interval := fs.Duration("interval", a.deps.LowStockInterval, "intervalo entre consultas")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := a.authenticate(ctx, creds); err != nil {
		return err
	}
	if *interval <= 0 {
		fmt.Fprintln(a.deps.Err, "-interval debe ser positivo")
		return ErrUsage
	}

	alert := func(products []*entity.Product) {
		fmt.Fprintf(a.deps.Out, "[%s] %d producto(s) bajo el mínimo\n", a.now().Format(dateLayout), len(products))
		if err := writeProducts(a.deps.Out, products...); err != nil {
			a.deps.Log.Error().Err(err).Msg("imprimir aviso de stock bajo")
		}
	}
	inventory.NewLowStockWatcher(a.deps.ProductUC, *interval, alert, a.deps.Log).Run(ctx)
	return nil
}
