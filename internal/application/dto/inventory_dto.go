package dto

// RecordMovementRequest entrada para registrar una entrada (IN) o salida (OUT).
type RecordMovementRequest struct {
	ProductID int64  `validate:"required"`
	Type      string `validate:"required,oneof=IN OUT"`
	Quantity  int64  `validate:"min=1"`
	Reason    string
}
