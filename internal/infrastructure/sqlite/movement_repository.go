package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger sobre SQLite (usable con la base o con una tx).
type MovementRepo struct {
	db *gorm.DB
}

// NewMovementRepository construye el adaptador.
func NewMovementRepository(db *gorm.DB) *MovementRepo {
	return &MovementRepo{db: db}
}

// Create agrega un movimiento al ledger y completa movement.ID.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	if err := r.db.WithContext(ctx).Create(movement).Error; err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List devuelve todos los movimientos con el nombre del producto, más recientes primero.
func (r *MovementRepo) List(ctx context.Context) ([]*entity.Movement, error) {
	list := []*entity.Movement{}
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.id, m.product_id, m.type, m.quantity, m.date, m.responsible,
		       COALESCE(m.reason, '') AS reason,
		       COALESCE(m.transaction_id, '') AS transaction_id,
		       p.name AS product_name
		FROM movements m
		JOIN products p ON p.id = m.product_id
		ORDER BY m.date DESC, m.id DESC`,
	).Scan(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return list, nil
}

// CountByProduct cuenta los movimientos que referencian un producto.
func (r *MovementRepo) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM movements WHERE product_id = ?`, productID).Scan(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}
