package dto

// RegisterRequest entrada para registro de usuario.
type RegisterRequest struct {
	Name   string `validate:"required"`
	Secret string `validate:"required"`
	Role   string
}

// LoginRequest credenciales para autenticar.
type LoginRequest struct {
	Name   string `validate:"required"`
	Secret string `validate:"required"`
}
