package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
)

func (a *App) movement(ctx context.Context, args []string) error {
	return a.dispatch(ctx, "movement", args, map[string]func(context.Context, []string) error{
		"record": a.movementRecord,
		"list":   a.movementList,
	})
}

func (a *App) movementRecord(ctx context.Context, args []string) error {
	fs := a.flagSet("movement record")
	creds := credentialFlags(fs)
	var in dto.RecordMovementRequest
	fs.Int64Var(&in.ProductID, "product", 0, "ID del producto")
	fs.StringVar(&in.Type, "type", "", "IN (entrada) u OUT (salida)")
	fs.Int64Var(&in.Quantity, "quantity", 0, "unidades, mayor que cero")
	fs.StringVar(&in.Reason, "reason", "", "motivo (opcional)")
	if err := parse(fs, args); err != nil {
		return err
	}
	user, err := a.authenticate(ctx, creds)
	if err != nil {
		return err
	}
	in.Type = strings.ToUpper(in.Type)
	if err := dto.Validate(in); err != nil {
		return err
	}

	if err := a.deps.RegisterMovement.RegisterMovementFromRequest(ctx, user.Name, in); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("producto %d: %w", in.ProductID, err)
		}
		return err
	}

	p, err := a.deps.ProductUC.GetByID(ctx, in.ProductID)
	if err != nil {
		return err
	}
	if p == nil {
		fmt.Fprintf(a.deps.Out, "movimiento %s de %d registrado\n", in.Type, in.Quantity)
		return nil
	}
	fmt.Fprintf(a.deps.Out, "movimiento %s de %d registrado; cantidad actual: %d\n", in.Type, in.Quantity, p.Quantity)
	if p.IsLowStock() {
		fmt.Fprintf(a.deps.Out, "aviso: %q está bajo el mínimo (%d < %d)\n", p.Name, p.Quantity, p.MinimumThreshold)
	}
	return nil
}

func (a *App) movementList(ctx context.Context, args []string) error {
	fs := a.flagSet("movement list")
	creds := credentialFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := a.authenticate(ctx, creds); err != nil {
		return err
	}

	movements, err := a.deps.RegisterMovement.ListMovements(ctx)
	if err != nil {
		return err
	}
	return writeMovements(a.deps.Out, movements)
}
