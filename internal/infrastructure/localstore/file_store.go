package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var _ Store = (*FileStore)(nil)

// FileStore snapshot sobre un único archivo JSON en disco, con escritura
// write-through en cada Set/Delete. Un mutex serializa el acceso dentro del
// proceso; procesos concurrentes pueden pisarse el archivo.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// NewFileStore abre (o crea) el snapshot en la ruta indicada.
// Un archivo corrupto se descarta y se parte de un snapshot vacío.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, data: map[string]json.RawMessage{}}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("localstore: leer snapshot: %w", err)
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.data = map[string]json.RawMessage{}
	}
	return s, nil
}

// Get devuelve el valor JSON de la clave, o (nil, nil) si no existe.
func (s *FileStore) Get(key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

// Set guarda el valor y persiste el snapshot completo.
func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = json.RawMessage(value)
	return s.flush()
}

// Delete elimina la clave y persiste el snapshot completo.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return s.flush()
}

func (s *FileStore) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("localstore: serializar snapshot: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("localstore: crear directorio: %w", err)
		}
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("localstore: escribir snapshot: %w", err)
	}
	return nil
}
