package cli

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// register no exige credenciales: cualquiera con acceso a la base puede crear usuarios.
func (a *App) register(ctx context.Context, args []string) error {
	fs := a.flagSet("register")
	var in dto.RegisterRequest
	fs.StringVar(&in.Name, "name", "", "nombre de usuario (único, sensible a mayúsculas)")
	fs.StringVar(&in.Secret, "password", "", "secreto, se guarda tal cual")
	fs.StringVar(&in.Role, "role", entity.RoleOperador, "rol (texto libre)")
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := dto.Validate(in); err != nil {
		return err
	}

	ok, err := a.deps.AuthUC.RegisterUser(ctx, in)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintf(a.deps.Out, "el usuario %q ya existe\n", in.Name)
		return nil
	}
	fmt.Fprintf(a.deps.Out, "usuario %q registrado\n", in.Name)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := a.flagSet("login")
	creds := credentialFlags(fs)
	if err := parse(fs, args); err != nil {
		return err
	}
	user, err := a.authenticate(ctx, creds)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.deps.Out, "bienvenido, %s (%s)\n", user.Name, user.Role)
	return nil
}
