package entity

import "time"

// Gestion es una entrada del libro de gestiones del sistema administrativo
// (Profit), de solo lectura. Se consulta por código de cliente (co_cli, que
// coincide con BitrixFar) para recuperar las observaciones cualitativas sin
// duplicarlas en la base principal.
type Gestion struct {
	CoCli               string
	VentaDescripcion    string
	CobranzaDescripcion string
	FechaRegistro       time.Time
}

// Vendedor entrada del directorio de vendedores del sistema administrativo.
type Vendedor struct {
	Nombre string
	CoVen  string
}
