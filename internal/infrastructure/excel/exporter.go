// Package excel genera el libro de cálculo del export de negociaciones.
package excel

import (
	"fmt"
	"io"

	"github.com/crmventas/negociaciones-api/internal/application/negociacion"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Negociaciones"

// headers columnas en orden fijo; coinciden con la vista del dashboard.
var headers = []string{
	"Fecha",
	"Compañía",
	"ID Bitrix",
	"ID Profit/FAR",
	"Ejecutivo",
	"Tipo Negociación",
	"Vendedor Asignado",
	"Código Vendedor",
	"Obs. Vendedor",
	"Nota Entrega",
	"Efectividad",
	"Obs. Supervisor",
}

// anchos de columna aproximados al autosize del export original.
var widths = []float64{12, 30, 14, 14, 22, 18, 24, 14, 40, 30, 14, 40}

var _ negociacion.SpreadsheetWriter = (*Exporter)(nil)

// Exporter implementación del puerto SpreadsheetWriter con excelize.
type Exporter struct{}

// NewExporter construye el generador de libros.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Negociaciones produce el libro: fila de encabezado en negrita blanco sobre
// verde (22C55E) y una fila por registro.
func (e *Exporter) Negociaciones(rows []negociacion.ExportRow) (io.WriterTo, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("renombrar hoja: %w", err)
	}

	header := make([]interface{}, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("escribir encabezado: %w", err)
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"22C55E"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("crear estilo: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", styleID); err != nil {
		return nil, fmt.Errorf("aplicar estilo: %w", err)
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return nil, fmt.Errorf("ancho de columna: %w", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			row.Fecha, row.Compania, row.BitrixID, row.BitrixFar,
			row.Ejecutivo, row.TipoNegociacion, row.Vendedor, row.CoVen,
			row.Observacion, row.NotaEntrega, row.Efectividad, row.ObservacionSupervisor,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("escribir fila %d: %w", i+2, err)
		}
	}

	return writerTo{f}, nil
}

// writerTo adapta el WriteTo variádico de excelize a io.WriterTo.
type writerTo struct{ f *excelize.File }

func (w writerTo) WriteTo(dst io.Writer) (int64, error) {
	return w.f.WriteTo(dst)
}

// FileName nombre sugerido para la descarga.
func FileName() string {
	return "negociaciones.xlsx"
}
