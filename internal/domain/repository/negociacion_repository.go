package repository

import (
	"context"

	"github.com/crmventas/negociaciones-api/internal/domain/entity"
)

// NegociacionFilter parámetros opcionales del listado. Todos los criterios se
// aplican en conjunción, salvo Search que es una disyunción sobre los campos
// bitrix_id, bitrix_name, bitrix_far y el nombre del usuario creador.
type NegociacionFilter struct {
	CoVen       string // vista pública por código de vendedor; anula el scoping por dueño
	UserID      int64  // 0 = sin scoping por dueño (admin)
	Search      string // substring case-insensitive
	DateFrom    string // YYYY-MM-DD, inclusivo sobre la fecha de creación
	DateTo      string // YYYY-MM-DD, inclusivo
	Efectividad *int   // nil = todas
}

// NegociacionConUsuario fila del listado: la negociación más el nombre del
// usuario creador (join). UserName vacío cuando el registro quedó huérfano.
type NegociacionConUsuario struct {
	entity.Negociacion
	UserName string
}

// NegociacionRepository define el puerto de persistencia para Negociacion (DIP).
type NegociacionRepository interface {
	Create(ctx context.Context, n *entity.Negociacion) error
	GetByID(ctx context.Context, id int64) (*entity.Negociacion, error)
	// List devuelve las filas que cumplen el filtro, siempre ordenadas por
	// fecha de creación descendente.
	List(ctx context.Context, f NegociacionFilter) ([]*NegociacionConUsuario, error)
	Update(ctx context.Context, n *entity.Negociacion) error
	Delete(ctx context.Context, id int64) error
}
