// Package cli expone los casos de uso del inventario como subcomandos de línea de comandos.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/jhoicas/inventario-local/internal/application/auth"
	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/transfer"
	"github.com/jhoicas/inventario-local/internal/application/usecase"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// ErrUsage indica argumentos incorrectos; el mensaje de uso ya se imprimió.
var ErrUsage = errors.New("uso incorrecto")

// StockReportGenerator genera el reporte imprimible del stock.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, products []*entity.Product, generatedAt time.Time) ([]byte, error)
}

// Deps dependencias del CLI.
type Deps struct {
	AuthUC           *auth.AuthUseCase
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Transfer         *transfer.CSVUseCase
	Report           StockReportGenerator
	LowStockInterval time.Duration
	Log              *logger.Logger
	Out              io.Writer // tablas y resultados
	Err              io.Writer // uso y errores de flags
}

// App despacha subcomandos.
type App struct {
	deps Deps
	now  func() time.Time
}

// New construye el CLI.
func New(deps Deps) *App {
	return &App{deps: deps, now: time.Now}
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, args []string) error
}

func (a *App) commands() []command {
	return []command{
		{"register", "registra un usuario", a.register},
		{"login", "verifica credenciales", a.login},
		{"product", "add | get | list | set-qty | remove | low", a.product},
		{"movement", "record | list", a.movement},
		{"export", "exporta el catálogo a CSV", a.exportCSV},
		{"import", "importa productos desde CSV", a.importCSV},
		{"report", "genera el reporte de stock en PDF", a.report},
		{"watch", "avisa periódicamente de stock bajo", a.watch},
	}
}

// Run ejecuta el subcomando indicado en args (sin el nombre del programa).
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return ErrUsage
	}
	for _, c := range a.commands() {
		if c.name == args[0] {
			err := c.run(ctx, args[1:])
			if errors.Is(err, flag.ErrHelp) {
				return nil
			}
			return err
		}
	}
	if args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		a.usage()
		return nil
	}
	fmt.Fprintf(a.deps.Err, "comando desconocido: %q\n", args[0])
	a.usage()
	return ErrUsage
}

func (a *App) usage() {
	fmt.Fprintln(a.deps.Err, "uso: inventario <comando> [flags]")
	fmt.Fprintln(a.deps.Err)
	for _, c := range a.commands() {
		fmt.Fprintf(a.deps.Err, "  %-10s %s\n", c.name, c.summary)
	}
}

// dispatch resuelve un subcomando de segundo nivel (product add, movement list, ...).
func (a *App) dispatch(ctx context.Context, group string, args []string, subs map[string]func(context.Context, []string) error) error {
	if len(args) > 0 {
		if fn, ok := subs[args[0]]; ok {
			return fn(ctx, args[1:])
		}
		fmt.Fprintf(a.deps.Err, "subcomando desconocido: %s %s\n", group, args[0])
	}
	fmt.Fprintf(a.deps.Err, "uso: inventario %s <subcomando> [flags]\n", group)
	return ErrUsage
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.deps.Err)
	return fs
}

// parse interpreta los flags; -h devuelve flag.ErrHelp, que el caller trata como éxito.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return ErrUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "argumentos inesperados: %v\n", fs.Args())
		return ErrUsage
	}
	return nil
}

// credentials flags comunes de la puerta de acceso.
type credentials struct {
	user     string
	password string
}

func credentialFlags(fs *flag.FlagSet) *credentials {
	c := &credentials{}
	fs.StringVar(&c.user, "user", "", "nombre de usuario")
	fs.StringVar(&c.password, "password", "", "secreto del usuario")
	return c
}

// authenticate exige credenciales válidas antes de tocar el inventario.
func (a *App) authenticate(ctx context.Context, c *credentials) (*entity.User, error) {
	in := dto.LoginRequest{Name: c.user, Secret: c.password}
	if err := dto.Validate(in); err != nil {
		return nil, fmt.Errorf("%w: -user y -password son obligatorios", domain.ErrUnauthorized)
	}
	user, err := a.deps.AuthUC.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
