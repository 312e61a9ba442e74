// Package policy concentra las reglas de autorización. Se decide con
// (rol, acción) en lugar de métodos sobre la entidad, para desacoplar la
// política del modelo de datos.
package policy

import "github.com/crmventas/negociaciones-api/internal/domain/entity"

// Action acción autorizable sobre negociaciones.
type Action int

const (
	// ActionVerTodas listar negociaciones de todos los usuarios (sin scoping por dueño).
	ActionVerTodas Action = iota
	// ActionEliminar borrar una negociación y su documento.
	ActionEliminar
	// ActionObservacionSupervisor escribir la observación del supervisor.
	ActionObservacionSupervisor
)

// Can indica si un rol puede ejecutar la acción. Hoy las tres acciones son
// exclusivas de admin; se mantiene el switch para que nuevas acciones
// declaren su regla explícitamente.
func Can(role int, a Action) bool {
	switch a {
	case ActionVerTodas, ActionEliminar, ActionObservacionSupervisor:
		return role == entity.RoleAdmin
	default:
		return false
	}
}
