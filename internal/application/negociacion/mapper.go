package negociacion

import (
	"fmt"
	"strings"
	"time"

	"github.com/crmventas/negociaciones-api/internal/application/dto"
	"github.com/crmventas/negociaciones-api/internal/domain/entity"
	"github.com/crmventas/negociaciones-api/internal/domain/repository"
)

// mesesCortos abreviaturas en español para la fecha del dashboard (d M Y).
var mesesCortos = [...]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// fechaLarga formatea "02 Ene 2026".
func fechaLarga(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), mesesCortos[t.Month()-1], t.Year())
}

// fechaCorta formatea "02/01/2026" (export).
func fechaCorta(t time.Time) string {
	return t.Format("02/01/2006")
}

// iniciales toma la primera letra de los dos primeros tokens del nombre del
// vendedor, en mayúsculas. Cadena vacía si no hay nombre.
func iniciales(nombre string) string {
	parts := strings.Fields(nombre)
	var b strings.Builder
	for i, p := range parts {
		if i == 2 {
			break
		}
		r := []rune(p)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// efectividadLabel etiqueta legible del estado de efectividad.
func efectividadLabel(v int) string {
	switch v {
	case entity.EfectividadEfectiva:
		return "Efectiva"
	case entity.EfectividadNoEfectiva:
		return "No Efectiva"
	default:
		return "Pendiente"
	}
}

// creador nombre del usuario creador; "Desconocido" para registros huérfanos.
func creador(userName string) string {
	if userName == "" {
		return "Desconocido"
	}
	return userName
}

// toView proyecta una fila del listado a su forma de presentación.
// observacion es el texto ya resuelto contra el libro de gestiones.
func (uc *UseCase) toView(row *repository.NegociacionConUsuario, observacion string) dto.NegotiationView {
	var pdfURL *string
	if row.TieneDocumento() {
		u := uc.docs.URL(*row.Documento)
		pdfURL = &u
	}
	hasNotes := row.ObservacionSupervisor != nil && *row.ObservacionSupervisor != ""
	notesCount := 0
	if hasNotes {
		notesCount = 1
	}
	return dto.NegotiationView{
		ID:              row.ID,
		Fecha:           fechaLarga(row.FechaMostrada()),
		BitrixID:        row.BitrixID,
		CompanyName:     row.BitrixName,
		CompanyTar:      row.BitrixFar,
		UserCreator:     creador(row.UserName),
		NegotiationType: row.TipoNegociacion,
		SalesPerson: dto.SalesPersonView{
			Name:     row.Vendedor,
			Initials: iniciales(row.Vendedor),
			CoVen:    row.CoVen,
		},
		SalesObservation:      observacion,
		Effectiveness:         efectividadLabel(row.Efectividad),
		HasPdf:                row.TieneDocumento(),
		PdfURL:                pdfURL,
		HasHistory:            false, // placeholder: no existe historial
		HasNotes:              hasNotes,
		NotesCount:            notesCount,
		SupervisorObservation: row.ObservacionSupervisor,
	}
}

// toExportRow proyecta una fila del listado a una fila del export.
func toExportRow(row *repository.NegociacionConUsuario, observacion string) ExportRow {
	notaEntrega := ""
	if row.NotaEntrega != nil {
		notaEntrega = *row.NotaEntrega
	}
	obsSupervisor := ""
	if row.ObservacionSupervisor != nil {
		obsSupervisor = *row.ObservacionSupervisor
	}
	return ExportRow{
		Fecha:                 fechaCorta(row.CreatedAt),
		Compania:              row.BitrixName,
		BitrixID:              row.BitrixID,
		BitrixFar:             row.BitrixFar,
		Ejecutivo:             creador(row.UserName),
		TipoNegociacion:       row.TipoNegociacion,
		Vendedor:              row.Vendedor,
		CoVen:                 row.CoVen,
		Observacion:           observacion,
		NotaEntrega:           notaEntrega,
		Efectividad:           efectividadLabel(row.Efectividad),
		ObservacionSupervisor: obsSupervisor,
	}
}
