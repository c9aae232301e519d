// Package csvio lee el dataset de inventario desde CSV y escribe los reportes tabulares.
package csvio

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventory-report/internal/domain"
	"github.com/jhoicas/inventory-report/internal/domain/entity"
)

// FileSource implementa inventory.RecordSource sobre un archivo CSV.
type FileSource struct {
	path string
}

// NewFileSource crea la fuente para path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name devuelve la ruta del archivo.
func (s *FileSource) Name() string { return s.path }

// Load abre el archivo y delega en ReadRows.
func (s *FileSource) Load(ctx context.Context) ([]entity.RawRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("csvio: abrir: %w", err)
	}
	defer f.Close()
	return ReadRows(ctx, f)
}

// ReadRows lee un CSV con encabezado. Los nombres de columna se normalizan
// ("Current Stock" → "current_stock"); si falta una columna obligatoria
// devuelve domain.ErrMissingColumns. Filas completamente vacías se omiten.
func ReadRows(ctx context.Context, r io.Reader) ([]entity.RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("csvio: %w: archivo vacío", domain.ErrMissingColumns)
	}
	if err != nil {
		return nil, fmt.Errorf("csvio: encabezado: %w", err)
	}

	columns := make([]string, len(header))
	present := make(map[string]bool, len(header))
	for i, h := range header {
		columns[i] = NormalizeHeader(h)
		present[columns[i]] = true
	}
	var missing []string
	for _, req := range entity.RequiredColumns {
		if !present[req] {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("csvio: %w: %s", domain.ErrMissingColumns, strings.Join(missing, ", "))
	}

	rows := make([]entity.RawRow, 0)
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: fila %d: %w", n+1, err)
		}
		n++
		if isBlank(record) {
			continue
		}
		values := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				values[col] = record[i]
			}
		}
		rows = append(rows, entity.RawRow{Number: n, Values: values})
	}
	return rows, nil
}

// NormalizeHeader quita BOM y espacios, pliega mayúsculas y reemplaza espacios por "_".
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = cases.Fold().String(strings.TrimSpace(h))
	return strings.Join(strings.Fields(h), "_")
}

func isBlank(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
