package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// LowStockLister consulta los productos bajo el mínimo.
type LowStockLister interface {
	LowStock(ctx context.Context) ([]*entity.Product, error)
}

// AlertFunc recibe los productos bajo el mínimo cuando la lista no está vacía.
type AlertFunc func(products []*entity.Product)

// LowStockWatcher repite la consulta de stock bajo a intervalo fijo y avisa si hay productos.
// Es un aviso, no una garantía: un error en una vuelta se registra y se reintenta en la siguiente.
type LowStockWatcher struct {
	lister   LowStockLister
	interval time.Duration
	alert    AlertFunc
	log      *logger.Logger
}

// NewLowStockWatcher construye el vigilante.
func NewLowStockWatcher(lister LowStockLister, interval time.Duration, alert AlertFunc, log *logger.Logger) *LowStockWatcher {
	return &LowStockWatcher{lister: lister, interval: interval, alert: alert, log: log}
}

// Run consulta de inmediato y luego cada intervalo, hasta que ctx se cancele.
func (w *LowStockWatcher) Run(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("vigilancia de stock bajo iniciada")

	w.check(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("vigilancia de stock bajo detenida")
			return
		case <-ticker.C:
			w.check(ctx)
		}
	}
}

func (w *LowStockWatcher) check(ctx context.Context) {
	products, err := w.lister.LowStock(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Error().Err(err).Msg("consulta de stock bajo")
		}
		return
	}
	if len(products) == 0 {
		return
	}
	w.log.Warn().Int("products", len(products)).Msg("productos con stock bajo")
	w.alert(products)
}
