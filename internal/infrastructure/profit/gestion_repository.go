package profit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/crmventas/negociaciones-api/internal/domain/entity"
	"github.com/crmventas/negociaciones-api/internal/domain/repository"
	"github.com/jmoiron/sqlx"
)

var _ repository.GestionRepository = (*GestionRepo)(nil)

// GestionRepo lookup de observaciones en la tabla gestiones del sistema
// administrativo. Solo lectura.
type GestionRepo struct {
	db *sqlx.DB
}

// NewGestionRepository construye el adaptador del libro de gestiones.
func NewGestionRepository(db *sqlx.DB) *GestionRepo {
	return &GestionRepo{db: db}
}

type gestionRow struct {
	CoCli               string         `db:"co_cli"`
	VentaDescripcion    sql.NullString `db:"venta_descripcion"`
	CobranzaDescripcion sql.NullString `db:"cobranza_descripcion"`
	FechaRegistro       time.Time      `db:"fecha_registro"`
}

func (g gestionRow) toEntity() *entity.Gestion {
	return &entity.Gestion{
		CoCli:               g.CoCli,
		VentaDescripcion:    g.VentaDescripcion.String,
		CobranzaDescripcion: g.CobranzaDescripcion.String,
		FechaRegistro:       g.FechaRegistro,
	}
}

// LookupObservacion busca la gestión del cliente registrada en el día indicado.
// Si hay varias en el día se toma la más reciente. Devuelve (nil, nil) sin coincidencia.
func (r *GestionRepo) LookupObservacion(ctx context.Context, coCli string, fecha time.Time) (*entity.Gestion, error) {
	const query = `
		SELECT co_cli, venta_descripcion, cobranza_descripcion, fecha_registro
		FROM gestiones
		WHERE co_cli = ? AND DATE(fecha_registro) = ?
		ORDER BY fecha_registro DESC
		LIMIT 1`
	var row gestionRow
	err := r.db.GetContext(ctx, &row, query, coCli, fecha.Format("2006-01-02"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("lookup gestion: %w", err)
	}
	return row.toEntity(), nil
}

// LatestByCliente devuelve la gestión más reciente del cliente, sin acotar
// por fecha (lookup legado). Devuelve (nil, nil) si no existe.
func (r *GestionRepo) LatestByCliente(ctx context.Context, coCli string) (*entity.Gestion, error) {
	const query = `
		SELECT co_cli, venta_descripcion, cobranza_descripcion, fecha_registro
		FROM gestiones
		WHERE co_cli = ?
		ORDER BY fecha_registro DESC
		LIMIT 1`
	var row gestionRow
	err := r.db.GetContext(ctx, &row, query, coCli)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest gestion: %w", err)
	}
	return row.toEntity(), nil
}
