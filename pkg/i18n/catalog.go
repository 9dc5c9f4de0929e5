package i18n

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog maps a language code to flattened dot-separated keys.
type Catalog map[string]map[string]string

// ParseYAML reads a document whose top-level keys are language codes and
// whose values are nested maps of strings:
//
//	en:
//	  validation:
//	    required: "%{field} is required."
func ParseYAML(data []byte) (Catalog, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}

	c := make(Catalog, len(raw))
	for lang, tree := range raw {
		flat := make(map[string]string)
		if err := flatten("", tree, flat); err != nil {
			return nil, errors.Join(ErrParseCatalog, fmt.Errorf("language %q: %w", lang, err))
		}
		c[strings.ToLower(lang)] = flat
	}
	return c, nil
}

// LoadFS merges every *.yaml and *.yml file in dir of fsys. Later files
// override keys from earlier ones in lexical order.
func LoadFS(fsys fs.FS, dir string) (Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrParseCatalog, err)
	}

	merged := Catalog{}
	for _, e := range entries {
		ext := path.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, errors.Join(ErrParseCatalog, err)
		}
		c, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		merged.merge(c)
	}
	if len(merged) == 0 {
		return nil, ErrEmptyCatalog
	}
	return merged, nil
}

func (c Catalog) merge(other Catalog) {
	for lang, keys := range other {
		if c[lang] == nil {
			c[lang] = make(map[string]string, len(keys))
		}
		for k, v := range keys {
			c[lang][k] = v
		}
	}
}

func flatten(prefix string, tree map[string]any, out map[string]string) error {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			out[key] = val
		case map[string]any:
			if err := flatten(key, val, out); err != nil {
				return err
			}
		case int, int64, float64, bool:
			out[key] = fmt.Sprint(val)
		default:
			return fmt.Errorf("key %q: unsupported value of type %T", key, v)
		}
	}
	return nil
}
