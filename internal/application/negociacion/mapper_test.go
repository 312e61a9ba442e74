package negociacion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/crmventas/negociaciones-api/internal/domain/entity"
)

func TestIniciales(t *testing.T) {
	cases := []struct {
		nombre string
		want   string
	}{
		{"Juan Perez", "JP"},
		{"juan perez gomez", "JP"}, // solo los dos primeros tokens
		{"Maria", "M"},
		{"  Pedro   Pablo  ", "PP"},
		{"ángel rivas", "ÁR"}, // primera runa, no primer byte
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, iniciales(tc.nombre), "nombre %q", tc.nombre)
	}
}

func TestEfectividadLabel(t *testing.T) {
	assert.Equal(t, "Pendiente", efectividadLabel(entity.EfectividadPendiente))
	assert.Equal(t, "Efectiva", efectividadLabel(entity.EfectividadEfectiva))
	assert.Equal(t, "No Efectiva", efectividadLabel(entity.EfectividadNoEfectiva))
	assert.Equal(t, "Pendiente", efectividadLabel(99), "valores desconocidos caen en Pendiente")
}

func TestFechaLarga(t *testing.T) {
	assert.Equal(t, "02 Ene 2026", fechaLarga(time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, "31 Dic 2025", fechaLarga(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "05 Ago 2026", fechaLarga(time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)))
}

func TestFechaCorta(t *testing.T) {
	assert.Equal(t, "02/01/2026", fechaCorta(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)))
}

func TestCreador(t *testing.T) {
	assert.Equal(t, "Maria Lopez", creador("Maria Lopez"))
	assert.Equal(t, "Desconocido", creador(""))
}
