package repository

import (
	"context"
	"time"

	"github.com/crmventas/negociaciones-api/internal/domain/entity"
)

// GestionRepository puerto de solo lectura hacia el libro de gestiones del
// sistema administrativo (conexión independiente de la base principal).
type GestionRepository interface {
	// LookupObservacion busca la gestión del cliente registrada en el día
	// indicado. Devuelve (nil, nil) si no hay coincidencia.
	LookupObservacion(ctx context.Context, coCli string, fecha time.Time) (*entity.Gestion, error)
	// LatestByCliente devuelve la gestión más reciente del cliente, sin
	// acotar por fecha. Devuelve (nil, nil) si no existe.
	LatestByCliente(ctx context.Context, coCli string) (*entity.Gestion, error)
}

// VendedorRepository puerto de solo lectura hacia el directorio de vendedores
// del sistema administrativo.
type VendedorRepository interface {
	ListVendedores(ctx context.Context) ([]*entity.Vendedor, error)
}
