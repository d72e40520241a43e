// Package transfer implementa la importación y exportación masiva del catálogo en CSV.
package transfer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// ExportHeader cabecera fija de la exportación, en este orden.
var ExportHeader = []string{"Name", "Description", "Quantity", "Minimum_Stock"}

// Grafías aceptadas por columna al importar, en orden de preferencia.
var (
	nameColumns        = []string{"Nome", "nome", "Name", "name"}
	descriptionColumns = []string{"Descrição", "descricao", "Description", "description"}
	quantityColumns    = []string{"Quantidade", "quantidade", "Quantity", "quantity"}
	thresholdColumns   = []string{"Estoque_Mínimo", "estoque_minimo", "Minimum_Stock", "minimum_stock"}
)

// ProductTxRunner ejecuta la importación completa en una sola transacción.
type ProductTxRunner interface {
	RunProducts(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}

// CSVUseCase exporta e importa productos (nombre, descripción, cantidad, mínimo).
type CSVUseCase struct {
	productRepo repository.ProductRepository
	txRunner    ProductTxRunner
	sourceEnc   encoding.Encoding
	log         *logger.Logger
}

// NewCSVUseCase construye el caso de uso. sourceEncoding aplica solo a la importación
// (utf-8, latin1/iso-8859-1, windows-1252); la exportación siempre es UTF-8.
func NewCSVUseCase(
	productRepo repository.ProductRepository,
	txRunner ProductTxRunner,
	sourceEncoding string,
	log *logger.Logger,
) (*CSVUseCase, error) {
	enc, err := lookupEncoding(sourceEncoding)
	if err != nil {
		return nil, err
	}
	return &CSVUseCase{productRepo: productRepo, txRunner: txRunner, sourceEnc: enc, log: log}, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "latin1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252":
		return charmap.Windows1252, nil
	}
	return nil, fmt.Errorf("codificación CSV no soportada: %q", name)
}

// Export escribe todos los productos en path. Los errores de E/S se devuelven al caller.
func (uc *CSVUseCase) Export(ctx context.Context, path string) error {
	products, err := uc.productRepo.List(ctx, "")
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(ExportHeader); err != nil {
		return fmt.Errorf("escribir cabecera: %w", err)
	}
	for _, p := range products {
		rec := []string{
			p.Name,
			p.Description,
			strconv.FormatInt(p.Quantity, 10),
			strconv.FormatInt(p.MinimumThreshold, 10),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("escribir fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cerrar %s: %w", path, err)
	}

	uc.log.Info().Str("path", path).Int("products", len(products)).Msg("stock exportado")
	return nil
}

// Import inserta un producto por fila válida y devuelve cuántos insertó.
// Una fila se omite, sin reportarla, si no trae nombre, si cantidad o mínimo no son enteros
// no negativos, si no se puede parsear o si viola una restricción de unicidad.
// Todas las inserciones se confirman juntas. Un archivo ilegible devuelve error.
func (uc *CSVUseCase) Import(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, uc.sourceEnc.NewDecoder()))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("leer cabecera: %w", err)
	}
	cols := newColumnIndex(header)

	inserted := 0
	err = uc.txRunner.RunProducts(ctx, func(productRepo repository.ProductRepository) error {
		for line := 2; ; line++ {
			rec, err := r.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				uc.log.Debug().Int("line", line).Err(err).Msg("fila omitida: csv inválido")
				continue
			}
			if err != nil {
				return fmt.Errorf("leer fila %d: %w", line, err)
			}

			product, ok := cols.product(rec)
			if !ok {
				uc.log.Debug().Int("line", line).Msg("fila omitida: campos inválidos")
				continue
			}
			if err := productRepo.Create(ctx, product); err != nil {
				// products no tiene UNIQUE hoy; la fila se omite si el esquema llega a imponerlo.
				if errors.Is(err, domain.ErrDuplicate) {
					uc.log.Debug().Int("line", line).Msg("fila omitida: duplicada")
					continue
				}
				return err
			}
			inserted++
		}
	})
	if err != nil {
		return 0, err
	}

	uc.log.Info().Str("path", path).Int("inserted", inserted).Msg("productos importados")
	return inserted, nil
}

// columnIndex posiciones de cada grafía aceptada dentro de la cabecera.
type columnIndex struct {
	name, description, quantity, threshold []int
}

func newColumnIndex(header []string) columnIndex {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = norm.NFC.String(strings.TrimPrefix(h, "\ufeff"))
		if _, seen := pos[h]; !seen {
			pos[h] = i
		}
	}
	find := func(spellings []string) []int {
		var idx []int
		for _, s := range spellings {
			if i, ok := pos[norm.NFC.String(s)]; ok {
				idx = append(idx, i)
			}
		}
		return idx
	}
	return columnIndex{
		name:        find(nameColumns),
		description: find(descriptionColumns),
		quantity:    find(quantityColumns),
		threshold:   find(thresholdColumns),
	}
}

// first devuelve el primer valor no vacío entre las columnas candidatas.
func first(rec []string, idx []int) string {
	for _, i := range idx {
		if i < len(rec) && rec[i] != "" {
			return rec[i]
		}
	}
	return ""
}

func (c columnIndex) product(rec []string) (*entity.Product, bool) {
	name := first(rec, c.name)
	if name == "" {
		return nil, false
	}
	qty, ok := parseNonNegative(first(rec, c.quantity))
	if !ok {
		return nil, false
	}
	threshold, ok := parseNonNegative(first(rec, c.threshold))
	if !ok {
		return nil, false
	}
	return &entity.Product{
		Name:             name,
		Description:      first(rec, c.description),
		Quantity:         qty,
		MinimumThreshold: threshold,
	}, true
}

// parseNonNegative acepta solo dígitos ASCII; vacío equivale a 0.
func parseNonNegative(s string) (int64, bool) {
	if s == "" {
		return 0, true
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
