package auth

import (
	"context"
	"errors"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// AuthUseCase casos de uso de credenciales: registro y login.
// El secreto se guarda y compara en texto plano; no hay hash.
type AuthUseCase struct {
	userRepo repository.UserRepository
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, log: log}
}

// RegisterUser crea un usuario. Devuelve false (sin error) si el nombre ya existe;
// el registro existente no se modifica.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (bool, error) {
	user := &entity.User{
		Name:   in.Name,
		Secret: in.Secret,
		Role:   in.Role,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			uc.log.Info().Str("user", in.Name).Msg("registro rechazado: nombre ya existe")
			return false, nil
		}
		return false, err
	}
	uc.log.Info().Int64("user_id", user.ID).Str("user", user.Name).Str("role", user.Role).Msg("usuario registrado")
	return true, nil
}

// Login busca coincidencia exacta (sensible a mayúsculas, sin normalizar) de nombre y secreto.
// Devuelve nil,nil si no hay coincidencia.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*entity.User, error) {
	user, err := uc.userRepo.FindByCredentials(ctx, in.Name, in.Secret)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log.Warn().Str("user", in.Name).Msg("credenciales inválidas")
		return nil, nil
	}
	return user, nil
}
