// Package storage guarda los documentos PDF de negociaciones en disco local,
// bajo un prefijo fijo servido públicamente por el servidor HTTP.
package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/crmventas/negociaciones-api/internal/application/negociacion"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// PublicPrefix ruta pública bajo la cual se sirven los documentos.
const PublicPrefix = "/storage/negociaciones"

var _ negociacion.DocumentStore = (*Local)(nil)

// Local almacenamiento de documentos en el sistema de archivos.
type Local struct {
	dir     string
	baseURL string
	now     func() time.Time
}

// NewLocal construye el almacenamiento local. baseURL vacío genera URLs relativas.
func NewLocal(dir, baseURL string) *Local {
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/"), now: time.Now}
}

// quitaDiacriticos elimina marcas diacríticas (Negociación -> Negociacion)
// para obtener nombres de archivo seguros en cualquier sistema.
var quitaDiacriticos = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// sanitize limpia el nombre original: sin rutas, sin diacríticos y con los
// caracteres problemáticos reemplazados por guión bajo.
func sanitize(original string) string {
	name := filepath.Base(original)
	if clean, _, err := transform.String(quitaDiacriticos, name); err == nil {
		name = clean
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "documento.pdf"
	}
	return b.String()
}

// StoredName deriva el nombre bajo el cual se guarda el archivo:
// <unix>_<nombre original saneado>.
func (l *Local) StoredName(original string) string {
	return fmt.Sprintf("%d_%s", l.now().Unix(), sanitize(original))
}

// Save escribe el archivo bajo el directorio de documentos.
func (l *Local) Save(name string, r io.Reader) error {
	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de documentos: %w", err)
	}
	f, err := os.Create(filepath.Join(l.dir, name))
	if err != nil {
		return fmt.Errorf("crear documento: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("escribir documento: %w", err)
	}
	return nil
}

// Remove elimina el archivo. Un archivo inexistente no es error.
func (l *Local) Remove(name string) error {
	err := os.Remove(filepath.Join(l.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("eliminar documento: %w", err)
	}
	return nil
}

// URL devuelve la URL pública del documento.
func (l *Local) URL(name string) string {
	return l.baseURL + PublicPrefix + "/" + name
}
