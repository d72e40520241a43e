package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre SQLite.
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create persiste un nuevo usuario. La unicidad del nombre la impone el índice UNIQUE.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByCredentials obtiene el usuario cuyo nombre y secreto coinciden exactamente.
func (r *UserRepo) FindByCredentials(ctx context.Context, name, secret string) (*entity.User, error) {
	var u entity.User
	res := r.db.WithContext(ctx).Raw(
		`SELECT id, name, secret, role FROM users WHERE name = ? AND secret = ? LIMIT 1`,
		name, secret,
	).Scan(&u)
	if res.Error != nil {
		return nil, fmt.Errorf("get user by credentials: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &u, nil
}
