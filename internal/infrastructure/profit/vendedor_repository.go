package profit

import (
	"context"
	"fmt"

	"github.com/crmventas/negociaciones-api/internal/domain/entity"
	"github.com/crmventas/negociaciones-api/internal/domain/repository"
	"github.com/jmoiron/sqlx"
)

var _ repository.VendedorRepository = (*VendedorRepo)(nil)

// VendedorRepo directorio de vendedores del sistema administrativo. Solo lectura.
type VendedorRepo struct {
	db *sqlx.DB
}

// NewVendedorRepository construye el adaptador del directorio de vendedores.
func NewVendedorRepository(db *sqlx.DB) *VendedorRepo {
	return &VendedorRepo{db: db}
}

// ListVendedores devuelve los registros con rol vendedor, ordenados por nombre.
func (r *VendedorRepo) ListVendedores(ctx context.Context) ([]*entity.Vendedor, error) {
	const query = `
		SELECT nombre, co_ven
		FROM vendedores
		WHERE rol = 'vendedor'
		ORDER BY nombre`
	var rows []struct {
		Nombre string `db:"nombre"`
		CoVen  string `db:"co_ven"`
	}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list vendedores: %w", err)
	}
	list := make([]*entity.Vendedor, 0, len(rows))
	for _, row := range rows {
		list = append(list, &entity.Vendedor{Nombre: row.Nombre, CoVen: row.CoVen})
	}
	return list, nil
}
