// Пакет fixtures - статические JSON-ответы имитируемого бэкенда
// (error.json, progress.json, success.json) и их чтение с кэшированием.
package fixtures

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/Gunvolt24/myform/internal/domain"
)

//go:embed json/*.json
var embedded embed.FS

// ErrFixtureNotFound - фикстура с таким именем отсутствует.
var ErrFixtureNotFound = errors.New("fixture not found")

// Default - встроенный набор фикстур.
func Default() fs.FS {
	sub, err := fs.Sub(embedded, "json")
	if err != nil {
		panic(err)
	}
	return sub
}

// bodyCache - кэш тел фикстур (memory.LRUCacheTTL).
type bodyCache interface {
	Get(ctx context.Context, name string) ([]byte, bool)
	Set(ctx context.Context, name string, body []byte) error
}

// Store - чтение фикстур из fs.FS через кэш.
type Store struct {
	fsys  fs.FS
	cache bodyCache
}

func NewStore(fsys fs.FS, cache bodyCache) *Store {
	return &Store{fsys: fsys, cache: cache}
}

// Get - тело фикстуры по имени файла (например, "success.json").
// Перед кэшированием тело проверяется: это должен быть корректный статус.
func (s *Store) Get(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !validName(name) {
		return nil, fmt.Errorf("%w: %q", ErrFixtureNotFound, name)
	}

	if body, ok := s.cache.Get(ctx, name); ok {
		return body, nil
	}

	body, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrFixtureNotFound, name)
		}
		return nil, fmt.Errorf("read fixture %q: %w", name, err)
	}
	if _, err := domain.ParseStatus(body); err != nil {
		return nil, fmt.Errorf("fixture %q: %w", name, err)
	}

	if err := s.cache.Set(ctx, name, body); err != nil {
		return nil, fmt.Errorf("cache fixture %q: %w", name, err)
	}
	return body, nil
}

// Names - имена всех доступных фикстур в алфавитном порядке.
func (s *Store) Names() ([]string, error) {
	names, err := fs.Glob(s.fsys, "*.json")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}

// validName - только файлы *.json верхнего уровня, без путей.
func validName(name string) bool {
	return fs.ValidPath(name) && path.Base(name) == name && path.Ext(name) == ".json"
}
