package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rabbitcabbage/blogconfig/internal/siteconfig"
)

func resolvedConfig(t *testing.T) siteconfig.Config {
	t.Helper()

	cfg, err := siteconfig.Build(siteconfig.User, "/Blogs")
	require.NoError(t, err)
	return cfg
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"yaml":  FormatYAML,
		"YML":   FormatYAML,
		" json": FormatJSON,
		"toml":  FormatTOML,
	} {
		got, err := ParseFormat(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFormatsAreAllParseable(t *testing.T) {
	assert.Contains(t, Formats(), "yml")
	for _, name := range Formats() {
		_, err := ParseFormat(name)
		assert.NoError(t, err, name)
	}
}

func TestEncodeJSONUsesGeneratorFieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, resolvedConfig(t), FormatJSON, false))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	site, ok := doc["site"].(map[string]any)
	require.True(t, ok, "expected site section")
	assert.Equal(t, "アンチノミー", site["title"])
	assert.Equal(t, "Antinomy", site["subtitle"])

	links, ok := site["socialLinks"].([]any)
	require.True(t, ok, "expected socialLinks array")
	require.Len(t, links, 2)
	assert.Equal(t, "github", links[0].(map[string]any)["name"])
	assert.Equal(t, "/Blogs/atom.xml", links[1].(map[string]any)["href"])

	seo, ok := doc["seo"].(map[string]any)
	require.True(t, ok, "expected seo section")
	assert.Equal(t, "", seo["twitter"])
}

func TestEncodeMinifiedJSON(t *testing.T) {
	cfg := resolvedConfig(t)

	var pretty, minified bytes.Buffer
	require.NoError(t, Encode(&pretty, cfg, FormatJSON, false))
	require.NoError(t, Encode(&minified, cfg, FormatJSON, true))

	assert.Less(t, minified.Len(), pretty.Len())
	assert.NotContains(t, minified.String(), "\n  ")

	var decoded siteconfig.Config
	require.NoError(t, json.Unmarshal(minified.Bytes(), &decoded))
	assert.Equal(t, cfg, decoded)
}

func TestEncodeYAML(t *testing.T) {
	cfg := resolvedConfig(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cfg, FormatYAML, true))
	assert.True(t, strings.Contains(buf.String(), "socialLinks:"))

	var decoded siteconfig.Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, cfg, decoded)
}

func TestEncodeTOML(t *testing.T) {
	cfg := resolvedConfig(t)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, cfg, FormatTOML, false))

	var decoded siteconfig.Config
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, cfg.Site.SocialLinks, decoded.Site.SocialLinks)
	assert.Equal(t, cfg.Site.Title, decoded.Site.Title)
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, Encode(&buf, siteconfig.Defaults(), Format("xml"), false), ErrUnknownFormat)
}
