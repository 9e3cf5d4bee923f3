// Package csvimport lee el CSV de catálogo exportado desde hoja de cálculo.
//
// Formato (con cabecera, separador ';'):
//
//	categoria;nombre;descripcion_corta;descripcion;precio
package csvimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/catalog-admin/internal/application/dto"
)

const columns = 5

// Options opciones de lectura.
type Options struct {
	Latin1 bool // el archivo viene en Windows-1252 / ISO-8859-1 (export típico de Excel)
	Comma  rune // por defecto ';'
}

// Read parsea el CSV y devuelve una fila por producto. Las líneas vacías se ignoran.
func Read(r io.Reader, opts Options) ([]dto.CatalogRow, error) {
	if opts.Latin1 {
		r = transform.NewReader(r, charmap.Windows1252.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.Comma = ';'
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = columns
	cr.TrimLeadingSpace = true

	var rows []dto.CatalogRow
	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leer CSV: %w", err)
		}
		if header {
			header = false
			continue
		}
		line, _ := cr.FieldPos(0)
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		rows = append(rows, dto.CatalogRow{
			Line:        line,
			Category:    rec[0],
			Name:        rec[1],
			ShortDesc:   rec[2],
			Description: rec[3],
			Price:       strings.ReplaceAll(rec[4], ",", "."),
		})
	}
	return rows, nil
}
