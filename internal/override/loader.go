package override

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/rabbitcabbage/blogconfig/internal/siteconfig"
)

var (
	// ErrUnsupportedFormat is returned for override files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported override format")
	// ErrConflictingKeys is returned when two alias spellings of the same field are set.
	ErrConflictingKeys = errors.New("conflicting override keys")
)

// keyAliases maps alternative spellings onto the generator's field names.
var keyAliases = map[string]string{
	"social_links": "socialLinks",
	"sociallinks":  "socialLinks",
}

// Loader reads override files from a filesystem.
type Loader struct {
	fs afero.Fs
}

// NewLoader returns a Loader backed by fs, or by the OS filesystem when fs is nil.
func NewLoader(fs afero.Fs) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Loader{fs: fs}
}

// Load reads path and decodes it into a partial override. Keys missing from
// the file stay nil so they fall back to the defaults on merge.
func (l *Loader) Load(path string) (siteconfig.UserConfig, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return siteconfig.UserConfig{}, fmt.Errorf("read override: %w", err)
	}

	raw, err := unmarshal(filepath.Ext(path), data)
	if err != nil {
		return siteconfig.UserConfig{}, fmt.Errorf("parse override %s: %w", path, err)
	}

	return Decode(raw)
}

// Decode converts a generic document into a UserConfig. Keys that match no
// field are rejected so a misspelling cannot silently fall back to a default.
func Decode(raw map[string]any) (siteconfig.UserConfig, error) {
	var out siteconfig.UserConfig

	normalized, err := normalizeMap(raw)
	if err != nil {
		return siteconfig.UserConfig{}, err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.DecodeHookFuncType(castStringHook),
		ErrorUnused: true,
		Result:      &out,
	})
	if err != nil {
		return siteconfig.UserConfig{}, fmt.Errorf("build decoder: %w", err)
	}

	if err := decoder.Decode(normalized); err != nil {
		return siteconfig.UserConfig{}, fmt.Errorf("decode override: %w", err)
	}
	return out, nil
}

func unmarshal(ext string, data []byte) (map[string]any, error) {
	raw := map[string]any{}
	var err error

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// normalizeKeys rewrites alias keys in every nested map before the struct
// fields are matched. The canonical spelling wins over an alias; two
// different aliases of the same field are an error.
func normalizeKeys(data any) (any, error) {
	switch v := data.(type) {
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			n, err := normalizeKeys(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	case map[string]any, map[any]any:
		m, err := cast.ToStringMapE(v)
		if err != nil {
			return data, nil
		}
		return normalizeMap(m)
	default:
		return data, nil
	}
}

func normalizeMap(m map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(m))
	source := make(map[string]string, len(keyAliases))
	for k, v := range m {
		n, err := normalizeKeys(v)
		if err != nil {
			return nil, err
		}

		target, ok := keyAliases[strings.ToLower(k)]
		if !ok {
			out[k] = n
			continue
		}
		if _, canonical := m[target]; canonical && k != target {
			continue
		}
		if prev, seen := source[target]; seen {
			first, second := prev, k
			if second < first {
				first, second = second, first
			}
			return nil, fmt.Errorf("%w: %q and %q", ErrConflictingKeys, first, second)
		}
		source[target] = k
		out[target] = n
	}
	return out, nil
}

// castStringHook lets scalar values such as numbers or booleans fill string fields.
func castStringHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String || from.Kind() == reflect.String {
		return data, nil
	}
	switch from.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return data, nil
	}
	return cast.ToStringE(data)
}
