package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/crmventas/negociaciones-api/internal/domain"
	"github.com/crmventas/negociaciones-api/internal/domain/entity"
	"github.com/crmventas/negociaciones-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.NegociacionRepository = (*NegociacionRepo)(nil)

// NegociacionRepo implementación del puerto NegociacionRepository sobre PostgreSQL.
type NegociacionRepo struct {
	pool *pgxpool.Pool
}

// NewNegociacionRepository construye el adaptador de persistencia para negociaciones.
func NewNegociacionRepository(pool *pgxpool.Pool) *NegociacionRepo {
	return &NegociacionRepo{pool: pool}
}

// Create persiste una nueva negociación y asigna el ID generado.
func (r *NegociacionRepo) Create(ctx context.Context, n *entity.Negociacion) error {
	query := `
		INSERT INTO negociaciones (
			bitrix_id, bitrix_name, bitrix_far, vendedor, co_ven, tipo_negociacion,
			documento, efectividad, observacion_supervisor, nota_entrega,
			user_id, fecha_negociacion, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		n.BitrixID, n.BitrixName, n.BitrixFar, n.Vendedor, n.CoVen, n.TipoNegociacion,
		n.Documento, n.Efectividad, n.ObservacionSupervisor, n.NotaEntrega,
		n.UserID, n.FechaNegociacion, n.CreatedAt, n.UpdatedAt,
	).Scan(&n.ID)
	if err != nil {
		return fmt.Errorf("insert negociacion: %w", err)
	}
	return nil
}

// GetByID obtiene una negociación por ID. Devuelve (nil, nil) si no existe.
func (r *NegociacionRepo) GetByID(ctx context.Context, id int64) (*entity.Negociacion, error) {
	query := `
		SELECT id, bitrix_id, bitrix_name, bitrix_far, vendedor, co_ven, tipo_negociacion,
		       documento, efectividad, observacion_supervisor, nota_entrega,
		       user_id, fecha_negociacion, created_at, updated_at
		FROM negociaciones WHERE id = $1`
	var n entity.Negociacion
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.BitrixID, &n.BitrixName, &n.BitrixFar, &n.Vendedor, &n.CoVen, &n.TipoNegociacion,
		&n.Documento, &n.Efectividad, &n.ObservacionSupervisor, &n.NotaEntrega,
		&n.UserID, &n.FechaNegociacion, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get negociacion by id: %w", err)
	}
	return &n, nil
}

// buildListQuery arma el SELECT del listado a partir del filtro. Función pura
// para poder verificar las condiciones y argumentos sin base de datos.
func buildListQuery(f repository.NegociacionFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT n.id, n.bitrix_id, n.bitrix_name, n.bitrix_far, n.vendedor, n.co_ven,
		       n.tipo_negociacion, n.documento, n.efectividad, n.observacion_supervisor,
		       n.nota_entrega, n.user_id, n.fecha_negociacion, n.created_at, n.updated_at,
		       COALESCE(u.name, '') AS user_name
		FROM negociaciones n
		LEFT JOIN users u ON u.id = n.user_id`)

	var conds []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.CoVen != "" {
		conds = append(conds, "n.co_ven = "+arg(f.CoVen))
	} else if f.UserID > 0 {
		conds = append(conds, "n.user_id = "+arg(f.UserID))
	}
	if f.Search != "" {
		p := arg("%" + f.Search + "%")
		conds = append(conds, fmt.Sprintf(
			"(n.bitrix_id ILIKE %[1]s OR n.bitrix_name ILIKE %[1]s OR n.bitrix_far ILIKE %[1]s OR u.name ILIKE %[1]s)", p))
	}
	if f.DateFrom != "" {
		conds = append(conds, "n.created_at::date >= "+arg(f.DateFrom)+"::date")
	}
	if f.DateTo != "" {
		conds = append(conds, "n.created_at::date <= "+arg(f.DateTo)+"::date")
	}
	if f.Efectividad != nil {
		conds = append(conds, "n.efectividad = "+arg(*f.Efectividad))
	}

	if len(conds) > 0 {
		sb.WriteString("\n\t\tWHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}
	sb.WriteString("\n\t\tORDER BY n.created_at DESC")
	return sb.String(), args
}

// List devuelve las filas que cumplen el filtro, con el nombre del usuario
// creador resuelto por join, ordenadas por fecha de creación descendente.
func (r *NegociacionRepo) List(ctx context.Context, f repository.NegociacionFilter) ([]*repository.NegociacionConUsuario, error) {
	query, args := buildListQuery(f)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list negociaciones: %w", err)
	}
	defer rows.Close()

	var list []*repository.NegociacionConUsuario
	for rows.Next() {
		var row repository.NegociacionConUsuario
		if err := rows.Scan(
			&row.ID, &row.BitrixID, &row.BitrixName, &row.BitrixFar, &row.Vendedor, &row.CoVen,
			&row.TipoNegociacion, &row.Documento, &row.Efectividad, &row.ObservacionSupervisor,
			&row.NotaEntrega, &row.UserID, &row.FechaNegociacion, &row.CreatedAt, &row.UpdatedAt,
			&row.UserName,
		); err != nil {
			return nil, fmt.Errorf("scan negociacion: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// Update persiste los campos mutables del workflow (efectividad, observación
// del supervisor y nota de entrega). El resto del registro es inmutable.
func (r *NegociacionRepo) Update(ctx context.Context, n *entity.Negociacion) error {
	query := `
		UPDATE negociaciones
		SET efectividad = $2, observacion_supervisor = $3, nota_entrega = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		n.ID, n.Efectividad, n.ObservacionSupervisor, n.NotaEntrega, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update negociacion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una negociación por ID.
func (r *NegociacionRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM negociaciones WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete negociacion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
