package repository

import (
	"context"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create devuelve domain.ErrDuplicate si el nombre ya existe; nunca sobrescribe.
	Create(ctx context.Context, user *entity.User) error
	// FindByCredentials busca coincidencia exacta de nombre y secreto. nil,nil si no existe.
	FindByCredentials(ctx context.Context, name, secret string) (*entity.User, error)
}
