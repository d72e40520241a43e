package dto

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name             string `validate:"required"`
	Description      string
	Quantity         int64 `validate:"min=0"`
	MinimumThreshold int64 `validate:"min=0"`
}

// SetQuantityRequest corrección manual de cantidad (no genera movimiento).
type SetQuantityRequest struct {
	ProductID int64 `validate:"required"`
	Quantity  int64 `validate:"min=0"`
}
