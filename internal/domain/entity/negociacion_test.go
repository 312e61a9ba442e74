package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEfectividadValida(t *testing.T) {
	assert.True(t, EfectividadValida(EfectividadPendiente))
	assert.True(t, EfectividadValida(EfectividadEfectiva))
	assert.True(t, EfectividadValida(EfectividadNoEfectiva))
	assert.False(t, EfectividadValida(3))
	assert.False(t, EfectividadValida(-1))
}

func TestFechaMostrada(t *testing.T) {
	creada := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	explicita := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)

	n := Negociacion{CreatedAt: creada}
	assert.Equal(t, creada, n.FechaMostrada(), "sin fecha explícita manda la de creación")

	n.FechaNegociacion = &explicita
	assert.Equal(t, explicita, n.FechaMostrada())
}

func TestTieneDocumento(t *testing.T) {
	var n Negociacion
	assert.False(t, n.TieneDocumento())

	vacio := ""
	n.Documento = &vacio
	assert.False(t, n.TieneDocumento(), "cadena vacía cuenta como sin documento")

	doc := "1700000000_contrato.pdf"
	n.Documento = &doc
	assert.True(t, n.TieneDocumento())
}
