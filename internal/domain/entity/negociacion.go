package entity

import "time"

// Estados de efectividad de una negociación.
const (
	EfectividadPendiente  = 0
	EfectividadEfectiva   = 1
	EfectividadNoEfectiva = 2
)

// EfectividadValida indica si el valor pertenece al conjunto permitido {0,1,2}.
func EfectividadValida(v int) bool {
	return v == EfectividadPendiente || v == EfectividadEfectiva || v == EfectividadNoEfectiva
}

// Negociacion vincula una empresa del CRM externo (Bitrix) con un vendedor
// asignado internamente. Vendedor y CoVen son copias desnormalizadas: reflejan
// la asignación al momento de crear el registro, sin integridad referencial
// hacia el directorio de vendedores.
type Negociacion struct {
	ID                    int64
	BitrixID              string // referencia opaca del CRM externo
	BitrixName            string
	BitrixFar             string // código secundario (Profit/FAR)
	Vendedor              string // nombre del vendedor asignado (snapshot)
	CoVen                 string // código del vendedor asignado (snapshot)
	TipoNegociacion       string
	Documento             *string // nombre del PDF almacenado; nunca se sobrescribe
	Efectividad           int     // EfectividadPendiente por defecto
	ObservacionSupervisor *string // solo escribible por admin
	NotaEntrega           *string
	UserID                int64      // usuario creador, inmutable
	FechaNegociacion      *time.Time // fecha explícita opcional; nil = usar CreatedAt
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// FechaMostrada devuelve la fecha de negociación explícita si existe,
// si no la fecha de creación.
func (n *Negociacion) FechaMostrada() time.Time {
	if n.FechaNegociacion != nil {
		return *n.FechaNegociacion
	}
	return n.CreatedAt
}

// TieneDocumento indica si el registro tiene un PDF asociado.
func (n *Negociacion) TieneDocumento() bool {
	return n.Documento != nil && *n.Documento != ""
}
