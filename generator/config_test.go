package generator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/cecgen/generator"
)

// writeTemp creates a temporary file with content and
// returns its path.
func writeTemp(
	tb testing.TB,
	dir string,
	name string,
	content string,
) string {
	tb.Helper()

	pa := filepath.Join(dir, name)
	require.NoError(tb, os.WriteFile(pa, []byte(content), 0o600))

	return pa
}

func TestLoadConfig_yaml_overlays_defaults(t *testing.T) {
	t.Parallel()

	pa := writeTemp(
		t, t.TempDir(), "cec.yaml",
		"versionLabel: cecgen 2.1\n",
	)

	cfg, err := generator.LoadConfig(pa)
	require.NoError(t, err)

	assert.Equal(t, "cecgen 2.1", cfg.VersionLabel)
	assert.Equal(t, generator.DefaultDataTypeKeyword, cfg.DataTypeKeyword)
	assert.Equal(t, generator.DefaultTemplate, cfg.DefaultTemplate)
}

func TestLoadConfig_json(t *testing.T) {
	t.Parallel()

	pa := writeTemp(
		t, t.TempDir(), "cec.json",
		`{"dataTypeKeyword": "inline constexpr", "defaultTemplate": "{cec:enum:name}"}`,
	)

	cfg, err := generator.LoadConfig(pa)
	require.NoError(t, err)

	assert.Equal(t, "inline constexpr", cfg.DataTypeKeyword)
	assert.Equal(t, "{cec:enum:name}", cfg.DefaultTemplate)
	assert.Equal(t, generator.DefaultVersionLabel, cfg.VersionLabel)
}

func TestLoadConfig_missing_file(t *testing.T) {
	t.Parallel()

	_, err := generator.LoadConfig("/nonexistent/cec.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestLoadConfig_malformed(t *testing.T) {
	t.Parallel()

	pa := writeTemp(t, t.TempDir(), "cec.json", "{not json")

	_, err := generator.LoadConfig(pa)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding")
}

func TestConfig_Merge_keeps_empty_fields(t *testing.T) {
	t.Parallel()

	got := generator.DefaultConfig().Merge(generator.Config{})

	assert.Equal(t, generator.DefaultConfig(), got)
}
