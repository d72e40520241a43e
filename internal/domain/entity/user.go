package entity

// Roles sugeridos para User; el rol es texto libre y no se valida contra esta lista.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa un usuario del sistema.
// Secret se guarda y compara en texto plano (ver DESIGN.md, debilidad conocida).
type User struct {
	ID     int64  `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"not null;uniqueIndex"`
	Secret string `gorm:"not null"`
	Role   string `gorm:"not null"`
}

// TableName fija el nombre de la tabla.
func (User) TableName() string { return "users" }
