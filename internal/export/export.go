// Package export writes the resolved site configuration in the shapes the
// site generator can read.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tdewolff/minify/v2"
	minjson "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"

	"github.com/rabbitcabbage/blogconfig/internal/siteconfig"
)

// Format names an output encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

const jsonMediaType = "application/json"

// ErrUnknownFormat is returned for unsupported output formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists every format name ParseFormat accepts, aliases included.
func Formats() []string {
	return []string{string(FormatYAML), "yml", string(FormatJSON), string(FormatTOML)}
}

// ParseFormat normalises name into a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatYAML, FormatJSON, FormatTOML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Encode writes cfg to w. Minification only applies to JSON output.
func Encode(w io.Writer, cfg siteconfig.Config, format Format, minified bool) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		return encodeJSON(w, cfg, minified)
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func encodeJSON(w io.Writer, cfg siteconfig.Config, minified bool) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	if !minified {
		_, err := buf.WriteTo(w)
		return err
	}

	m := minify.New()
	m.AddFunc(jsonMediaType, minjson.Minify)
	if err := m.Minify(jsonMediaType, w, &buf); err != nil {
		return fmt.Errorf("minify json: %w", err)
	}
	return nil
}
