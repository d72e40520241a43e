package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Movement es una entrada inmutable del ledger: no existe update ni delete.
type Movement struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	ProductID     int64     `gorm:"not null"`
	Type          string    `gorm:"not null"`
	Quantity      int64     `gorm:"not null"`
	Date          time.Time `gorm:"not null"`
	Responsible   string    `gorm:"not null"`
	Reason        string
	TransactionID string `gorm:"column:transaction_id"`

	// Solo lectura: viene del JOIN con products.
	ProductName string `gorm:"->;-:migration"`
}

// TableName fija el nombre de la tabla.
func (Movement) TableName() string { return "movements" }

// SignedQuantity devuelve la cantidad con signo (+ entrada, - salida).
func (m *Movement) SignedQuantity() int64 {
	if m.Type == MovementTypeOUT {
		return -m.Quantity
	}
	return m.Quantity
}

// IsValidMovementType indica si t es IN u OUT.
func IsValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}
