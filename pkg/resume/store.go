package resume

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store сохраняет загруженные файлы в каталог под уникальным именем.
type Store struct {
	dir string
}

func NewStore(dir string) *Store { return &Store{dir: dir} }

// Save writes data to <dir>/<uuid><ext> and returns the path.
// The client file name only contributes its extension.
func (s *Store) Save(filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("prepare upload dir: %w", err)
	}
	dst := filepath.Join(s.dir, uuid.New().String()+strings.ToLower(filepath.Ext(filename)))
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return dst, nil
}
