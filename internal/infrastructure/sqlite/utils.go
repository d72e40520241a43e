package sqlite

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isUniqueViolation verifica si un error es una violación de constraint UNIQUE.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
