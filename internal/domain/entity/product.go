package entity

// Product representa un producto del catálogo.
// Quantity puede quedar negativa: ni la base ni el ledger imponen un piso.
type Product struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	Name             string `gorm:"not null"`
	Description      string
	Quantity         int64 `gorm:"not null"`
	MinimumThreshold int64 `gorm:"column:minimum_threshold"`
}

// TableName fija el nombre de la tabla.
func (Product) TableName() string { return "products" }

// IsLowStock indica si la cantidad está estrictamente por debajo del mínimo.
func (p *Product) IsLowStock() bool {
	return p.Quantity < p.MinimumThreshold
}
