package negociacion

import "io"

// DocumentStore puerto de almacenamiento de los PDF adjuntos. La
// implementación define el esquema de nombres y la URL pública.
type DocumentStore interface {
	// StoredName deriva el nombre bajo el cual se guardará el archivo
	// (prefijo de tiempo + nombre original saneado).
	StoredName(original string) string
	Save(name string, r io.Reader) error
	// Remove elimina el archivo. Un archivo inexistente no es error.
	Remove(name string) error
	URL(name string) string
}

// ExportRow fila ya formateada del export (todas las celdas como texto).
type ExportRow struct {
	Fecha                 string
	Compania              string
	BitrixID              string
	BitrixFar             string
	Ejecutivo             string
	TipoNegociacion       string
	Vendedor              string
	CoVen                 string
	Observacion           string
	NotaEntrega           string
	Efectividad           string
	ObservacionSupervisor string
}

// SpreadsheetWriter puerto de generación del libro de export.
type SpreadsheetWriter interface {
	Negociaciones(rows []ExportRow) (io.WriterTo, error)
}
