// Package credentials persiste la sesión del usuario en un único archivo
// JSON, el equivalente del almacenamiento local del navegador en el panel
// original. Cualquier copia ilegible o sin rol se trata como ausencia de
// sesión y se elimina.
package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/tu-usuario/admin-revendedores/internal/domain/entity"
	"github.com/tu-usuario/admin-revendedores/pkg/jwt"
)

// Store almacén de la sesión persistida. Sin acceso a red.
type Store struct {
	path string
	now  func() time.Time
}

// New construye el almacén sobre la ruta indicada.
func New(path string) *Store {
	return &Store{path: path, now: time.Now}
}

// Save serializa la sesión al archivo. Rechaza sesiones que violen el
// invariante token⇔rol para no persistir estados a medias.
func (s *Store) Save(sess entity.Session) error {
	if !sess.Complete() {
		return fmt.Errorf("guardar sesión: token o rol ausente")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("guardar sesión: %w", err)
	}
	return nil
}

// Load lee la sesión persistida. Devuelve (nil, nil) si no hay archivo; si el
// contenido es corrupto, no trae rol o el token ya venció, limpia el archivo
// y también devuelve (nil, nil): arrancar anónimo nunca es un error.
func (s *Store) Load() (*entity.Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer sesión: %w", err)
	}

	var sess entity.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		_ = s.Clear()
		return nil, nil
	}
	if !sess.Complete() || !sess.Category.Valid() {
		_ = s.Clear()
		return nil, nil
	}
	if exp, ok := jwt.ExpiresAt(sess.Token); ok && exp.Before(s.now()) {
		_ = s.Clear()
		return nil, nil
	}
	return &sess, nil
}

// Clear elimina el archivo de sesión.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("limpiar sesión: %w", err)
	}
	return nil
}
