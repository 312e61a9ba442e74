package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocal(t *testing.T) *Local {
	t.Helper()
	l := NewLocal(t.TempDir(), "")
	l.now = func() time.Time { return time.Unix(1700000000, 0) }
	return l
}

func TestSanitize(t *testing.T) {
	cases := []struct {
		original string
		want     string
	}{
		{"contrato.pdf", "contrato.pdf"},
		{"Contrato Ñandú (final).pdf", "Contrato_Nandu__final_.pdf"},
		{"negociación 2026.pdf", "negociacion_2026.pdf"},
		{"../../etc/passwd.pdf", "passwd.pdf"}, // sin componentes de ruta
		{"", "documento.pdf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, sanitize(tc.original), "original %q", tc.original)
	}
}

func TestStoredName(t *testing.T) {
	l := newTestLocal(t)
	assert.Equal(t, "1700000000_Contrato_Acme.pdf", l.StoredName("Contrato Acme.pdf"))
}

func TestSaveYRemove(t *testing.T) {
	l := newTestLocal(t)

	name := l.StoredName("contrato.pdf")
	require.NoError(t, l.Save(name, strings.NewReader("%PDF-1.4")))

	data, err := os.ReadFile(filepath.Join(l.dir, name))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	require.NoError(t, l.Remove(name))
	_, err = os.Stat(filepath.Join(l.dir, name))
	assert.True(t, os.IsNotExist(err))
}

func TestRemove_ArchivoInexistenteNoEsError(t *testing.T) {
	l := newTestLocal(t)
	assert.NoError(t, l.Remove("no-existe.pdf"))
}

func TestSave_CreaDirectorio(t *testing.T) {
	base := t.TempDir()
	l := NewLocal(filepath.Join(base, "anidado", "documentos"), "")

	require.NoError(t, l.Save("a.pdf", strings.NewReader("x")))
	_, err := os.Stat(filepath.Join(base, "anidado", "documentos", "a.pdf"))
	assert.NoError(t, err)
}

func TestURL(t *testing.T) {
	relativo := NewLocal(t.TempDir(), "")
	assert.Equal(t, "/storage/negociaciones/a.pdf", relativo.URL("a.pdf"))

	absoluto := NewLocal(t.TempDir(), "https://crm.example.com/")
	assert.Equal(t, "https://crm.example.com/storage/negociaciones/a.pdf", absoluto.URL("a.pdf"))
}
