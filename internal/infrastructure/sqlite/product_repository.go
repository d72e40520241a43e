package sqlite

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, COALESCE(description, '') AS description, quantity, COALESCE(minimum_threshold, 0) AS minimum_threshold`

// ProductRepo implementación del puerto ProductRepository sobre SQLite (usable con la base o con una tx).
type ProductRepo struct {
	db *gorm.DB
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un nuevo producto y completa product.ID. No hay unicidad sobre el nombre.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. nil,nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var p entity.Product
	res := r.db.WithContext(ctx).Raw(`SELECT `+productColumns+` FROM products WHERE id = ?`, id).Scan(&p)
	if res.Error != nil {
		return nil, fmt.Errorf("get product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &p, nil
}

// List lista productos. instr() es sensible a mayúsculas; LIKE en SQLite no lo es para ASCII.
func (r *ProductRepo) List(ctx context.Context, nameFilter string) ([]*entity.Product, error) {
	list := []*entity.Product{}
	q := r.db.WithContext(ctx)
	var err error
	if nameFilter != "" {
		err = q.Raw(`SELECT `+productColumns+` FROM products WHERE instr(name, ?) > 0 ORDER BY id`, nameFilter).Scan(&list).Error
	} else {
		err = q.Raw(`SELECT ` + productColumns + ` FROM products ORDER BY id`).Scan(&list).Error
	}
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// ListLowStock lista productos con cantidad estrictamente menor al mínimo.
func (r *ProductRepo) ListLowStock(ctx context.Context) ([]*entity.Product, error) {
	list := []*entity.Product{}
	err := r.db.WithContext(ctx).Raw(
		`SELECT ` + productColumns + ` FROM products WHERE quantity < COALESCE(minimum_threshold, 0) ORDER BY id`,
	).Scan(&list).Error
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	return list, nil
}

// SetQuantity sobrescribe la cantidad (corrección manual, sin movimiento).
func (r *ProductRepo) SetQuantity(ctx context.Context, id, quantity int64) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`UPDATE products SET quantity = ? WHERE id = ?`, quantity, id)
	if res.Error != nil {
		return false, fmt.Errorf("set product quantity: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// AddQuantity suma delta a la cantidad actual en una sola sentencia.
func (r *ProductRepo) AddQuantity(ctx context.Context, id, delta int64) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`UPDATE products SET quantity = quantity + ? WHERE id = ?`, delta, id)
	if res.Error != nil {
		return false, fmt.Errorf("add product quantity: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete elimina un producto por ID. La guarda de movimientos vive en el caso de uso.
func (r *ProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Exec(`DELETE FROM products WHERE id = ?`, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete product: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
