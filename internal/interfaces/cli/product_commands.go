package cli

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-local/internal/application/dto"
)

func (a *App) product(ctx context.Context, args []string) error {
	return a.dispatch(ctx, "product", args, map[string]func(context.Context, []string) error{
		"add":     a.productAdd,
		"get":     a.productGet,
		"list":    a.productList,
		"set-qty": a.productSetQuantity,
		"remove":  a.productRemove,
		"low":     a.productLow,
	})
}

func (a *App) productAdd(ctx context.Context, args []string) error {
	fs := a.flagSet("product add")
	creds := credentialFlags(fs)
	var in dto.CreateProductRequest
	fs.StringVar(&in.Name, "name", "", "nombre del producto")
	fs.StringVar(&in.Description, "description", "", "descripción")
	fs.Int64Var(&in.Quantity, "quantity", 0, "cantidad inicial")
	fs.Int64Var(&in.MinimumThreshold, "min", 0, "stock mínimo")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := a.authenticate(ctx, creds); err != nil {
		return err
	}
	if err := dto.Validate(in); err != nil {
		return err
	}

	id, err := a.deps.ProductUC.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.deps.Out, "producto %d creado\n", id)
	return nil
}

func (a *App) productGet(ctx context.Context, args []string) error {
	fs := a.flagSet("product get")
	creds := credentialFlags(fs)
	id := fs.Int64("id", 0, "ID del producto")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := a.authenticate(ctx, creds); err != nil {
		return err
	}

	p, err := a.deps.ProductUC.GetByID(ctx, *id)
	if err != nil {
		return err
	}
	if p == nil {
		fmt.Fprintf(a.deps.Out, "producto %d no encontrado\n", *id)
		return nil
	}
	return writeProducts(a.deps.Out, p)
}

func (a *App) productList(ctx context.Context, args []string) error {
	fs := a.flagSet("product list")
	creds := credentialFlags(fs)
	filter := fs.String("filter", "", "solo nombres que contengan este texto (sensible a mayúsculas)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := a.authenticate(ctx, creds); err != nil {
		return err
	}

	products, err := a.deps.ProductUC.List(ctx, *filter)
	if err != nil {
		return err
	}
	return writeProducts(a.deps.Out, products...)
}

func (a *App) productSetQuantity(ctx context.Context, args []string) error {
	fs := a.flagSet("product set-qty")
	creds := credentialFlags(fs)
	var in dto.SetQuantityRequest
	fs.Int64Var(&in.ProductID, "id", 0, "ID del producto")
	fs.Int64Var(&in.Quantity, "quantity", 0, "nueva cantidad")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := a.authenticate(ctx, creds); err != nil {
		return err
	}
	if err := dto.Validate(in); err != nil {
		return err
	}

	if !a.deps.ProductUC.SetQuantityRaw(ctx, in.ProductID, in.Quantity) {
		fmt.Fprintf(a.deps.Out, "no se pudo actualizar el producto %d\n", in.ProductID)
		return nil
	}
	fmt.Fprintf(a.deps.Out, "cantidad del producto %d = %d (sin movimiento)\n", in.ProductID, in.Quantity)
	return nil
}

func (a *App) productRemove(ctx context.Context, args []string) error {
	fs := a.flagSet("product remove")
	creds := credentialFlags(fs)
	id := fs.Int64("id", 0, "ID del producto")
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := a.authenticate(ctx, creds); err != nil {
		return err
	}

	ok, err := a.deps.ProductUC.Delete(ctx, *id)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(a.deps.Out, "producto %d no eliminado: no existe o tiene movimientos\n", *id)
		return nil
	}
	fmt.Fprintf(a.deps.Out, "producto %d eliminado\n", *id)
	return nil
}

func (a *App) productLow(ctx context.Context, args []string) error {
	fs := a.flagSet("product low")
	creds := credentialFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	if _, err := a.authenticate(ctx, creds); err != nil {
		return err
	}

	products, err := a.deps.ProductUC.LowStock(ctx)
	if err != nil {
		return err
	}
	return writeProducts(a.deps.Out, products...)
}
