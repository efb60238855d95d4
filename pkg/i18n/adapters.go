package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"strings"
)

// TranslationAdapter defines how translations are loaded.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every *.yaml and *.yml file in a directory of fsys.
// Files are merged in lexical order; later files override keys of earlier
// ones at the top level of each language.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter creates an adapter reading dir inside fsys. Use "." for the
// root of an embed.FS.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.fsys == nil {
		return nil, ErrNilAdapter
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	result := make(map[string]map[string]any)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := entry.Name()
		if entry.IsDir() || !isYAML(name) {
			continue
		}

		content, err := fs.ReadFile(a.fsys, path.Join(a.dir, name))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		parsed, err := ParseYAML(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		for lang, tr := range parsed {
			if result[lang] == nil {
				result[lang] = make(map[string]any, len(tr))
			}
			maps.Copy(result[lang], tr)
		}
	}

	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}

func isYAML(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
