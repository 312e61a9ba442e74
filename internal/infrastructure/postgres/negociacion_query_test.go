package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmventas/negociaciones-api/internal/domain/repository"
)

func TestBuildListQuery_SinFiltros(t *testing.T) {
	query, args := buildListQuery(repository.NegociacionFilter{})

	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "ORDER BY n.created_at DESC")
	assert.Contains(t, query, "LEFT JOIN users u ON u.id = n.user_id")
	assert.Empty(t, args)
}

func TestBuildListQuery_ScopingPorDueno(t *testing.T) {
	query, args := buildListQuery(repository.NegociacionFilter{UserID: 7})

	assert.Contains(t, query, "n.user_id = $1")
	assert.Equal(t, []any{int64(7)}, args)
}

func TestBuildListQuery_VenAnulaScoping(t *testing.T) {
	query, args := buildListQuery(repository.NegociacionFilter{CoVen: "V1", UserID: 7})

	assert.Contains(t, query, "n.co_ven = $1")
	assert.NotContains(t, query, "n.user_id", "con co_ven presente no se filtra por dueño")
	assert.Equal(t, []any{"V1"}, args)
}

func TestBuildListQuery_BusquedaReutilizaPlaceholder(t *testing.T) {
	query, args := buildListQuery(repository.NegociacionFilter{Search: "acme"})

	require.Equal(t, []any{"%acme%"}, args)
	assert.Contains(t, query, "n.bitrix_id ILIKE $1")
	assert.Contains(t, query, "n.bitrix_name ILIKE $1")
	assert.Contains(t, query, "n.bitrix_far ILIKE $1")
	assert.Contains(t, query, "u.name ILIKE $1")
}

func TestBuildListQuery_RangoDeFechasInclusivo(t *testing.T) {
	query, args := buildListQuery(repository.NegociacionFilter{
		DateFrom: "2026-01-01",
		DateTo:   "2026-01-31",
	})

	assert.Contains(t, query, "n.created_at::date >= $1::date")
	assert.Contains(t, query, "n.created_at::date <= $2::date")
	assert.Equal(t, []any{"2026-01-01", "2026-01-31"}, args)
}

func TestBuildListQuery_TodosLosFiltros(t *testing.T) {
	ef := 1
	query, args := buildListQuery(repository.NegociacionFilter{
		UserID:      7,
		Search:      "acme",
		DateFrom:    "2026-01-01",
		DateTo:      "2026-01-31",
		Efectividad: &ef,
	})

	require.Len(t, args, 5)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, "%acme%", args[1])
	assert.Equal(t, 1, args[4])
	assert.Contains(t, query, "n.efectividad = $5")
	assert.Equal(t, 4, strings.Count(query, " AND "),
		"cinco condiciones unidas por AND (la búsqueda es una sola condición compuesta)")
}
