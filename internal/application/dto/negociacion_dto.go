package dto

// ListRequest parámetros de filtro del dashboard y del export. Todos opcionales.
type ListRequest struct {
	Ven         string `query:"ven"`         // vista pública por código de vendedor
	Search      string `query:"search"`
	DateFrom    string `query:"date_from"`   // YYYY-MM-DD
	DateTo      string `query:"date_to"`     // YYYY-MM-DD
	Efectividad string `query:"efectividad"` // efectiva | no-efectiva | pendiente | todas
}

// CreateNegociacionRequest campos del formulario multipart de creación.
// El archivo PDF (campo documento) se valida y procesa en el handler.
type CreateNegociacionRequest struct {
	BitrixID         string `form:"bitrix_id" validate:"required"`
	BitrixName       string `form:"bitrix_name" validate:"required"`
	BitrixFar        string `form:"bitrix_far" validate:"required"`
	Vendedor         string `form:"vendedor" validate:"required"`
	CoVen            string `form:"co_ven" validate:"required"`
	TipoNegociacion  string `form:"tipo_negociacion" validate:"required"`
	FechaNegociacion string `form:"fecha_negociacion" validate:"omitempty,datetime=2006-01-02"`
}

// UpdateNegociacionRequest patch parcial: solo se aplican los campos presentes.
type UpdateNegociacionRequest struct {
	Efectividad           *int    `json:"efectividad" validate:"omitempty,min=0,max=2"`
	ObservacionSupervisor *string `json:"observacion_supervisor"`
	NotaEntrega           *string `json:"nota_entrega"`
}

// SalesPersonView vendedor asignado tal como lo consume la vista.
type SalesPersonView struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
	CoVen    string `json:"co_ven"`
}

// NegotiationView proyección de una negociación para la vista del dashboard.
type NegotiationView struct {
	ID                    int64           `json:"id"`
	Fecha                 string          `json:"fecha"`
	BitrixID              string          `json:"bitrixId"`
	CompanyName           string          `json:"companyName"`
	CompanyTar            string          `json:"companyTar"`
	UserCreator           string          `json:"userCreator"`
	NegotiationType       string          `json:"negotiationType"`
	SalesPerson           SalesPersonView `json:"salesPerson"`
	SalesObservation      string          `json:"salesObservation"`
	Effectiveness         string          `json:"effectiveness"`
	HasPdf                bool            `json:"hasPdf"`
	PdfURL                *string         `json:"pdfUrl"`
	HasHistory            bool            `json:"hasHistory"` // siempre false, sin modelo de historial
	HasNotes              bool            `json:"hasNotes"`
	NotesCount            int             `json:"notesCount"` // 0 o 1: una única observación de supervisor
	SupervisorObservation *string         `json:"supervisorObservation"`
}

// DashboardResponse payload completo del dashboard.
type DashboardResponse struct {
	Negotiations []NegotiationView `json:"negotiations"`
	ReadOnly     bool              `json:"readOnly"`
	IsAdmin      bool              `json:"isAdmin"`
	Filters      ListRequest       `json:"filters"`
}

// ObservacionResponse respuesta del lookup legado por código de cliente.
type ObservacionResponse struct {
	Observacion *GestionView `json:"observacion"`
}

// GestionView proyección de una gestión del sistema administrativo.
type GestionView struct {
	VentaDescripcion    string `json:"venta_descripcion"`
	CobranzaDescripcion string `json:"cobranza_descripcion"`
}

// VendedorView entrada del directorio de vendedores.
type VendedorView struct {
	Nombre string `json:"nombre"`
	CoVen  string `json:"co_ven"`
}

// VendedoresResponse directorio de vendedores más el perfil del solicitante.
type VendedoresResponse struct {
	Vendedores []VendedorView `json:"vendedores"`
	Usuario    UserResponse   `json:"usuario"`
}
