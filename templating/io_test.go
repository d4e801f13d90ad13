package templating_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/cecgen/enumdesc"
	"github.com/byte4ever/cecgen/templating"
)

func TestReadTemplate_file(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "enum.tpl")
	require.NoError(t, os.WriteFile(pa, []byte("struct {cec:enum:name};"), 0o600))

	got, err := templating.ReadTemplate(pa, nil)

	require.NoError(t, err)
	assert.Equal(t, "struct {cec:enum:name};", got)
}

func TestReadTemplate_empty_path_selects_default(t *testing.T) {
	t.Parallel()

	got, err := templating.ReadTemplate("", strings.NewReader("ignored"))

	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestReadTemplate_stdin(t *testing.T) {
	t.Parallel()

	got, err := templating.ReadTemplate(
		templating.Stdio, strings.NewReader("{cec:enum:keyList}"),
	)

	require.NoError(t, err)
	assert.Equal(t, "{cec:enum:keyList}", got)
}

func TestReadTemplate_missing_file(t *testing.T) {
	t.Parallel()

	_, err := templating.ReadTemplate("/nonexistent/enum.tpl", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading template")
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	ed := &enumdesc.EnumDescription{
		Name:     "Color",
		FullName: "gfx::Color",
		Type:     "unsigned char",
	}

	tests := []struct {
		pattern string
		want    string
	}{
		{"", ""},
		{"-", "-"},
		{"out/{name}.h", "out/Color.h"},
		{"{fullName}_{type}.hpp", "gfx_Color_unsigned_char.hpp"},
		{"{other}.h", "{other}.h"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, templating.OutputPath(tt.pattern, ed), tt.pattern)
	}
}

func TestWriteOutput_file_creates_dirs(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "gen", "Color.h")

	require.NoError(t, templating.WriteOutput(pa, "enum", nil))

	got, err := os.ReadFile(pa) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "enum", string(got))
}

func TestWriteOutput_truncates(t *testing.T) {
	t.Parallel()

	pa := filepath.Join(t.TempDir(), "Color.h")

	require.NoError(t, templating.WriteOutput(pa, "long content", nil))
	require.NoError(t, templating.WriteOutput(pa, "short", nil))

	got, err := os.ReadFile(pa) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "short", string(got))
}

func TestWriteOutput_stdout(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, templating.WriteOutput("", "a", &buf))
	require.NoError(t, templating.WriteOutput(templating.Stdio, "b", &buf))

	assert.Equal(t, "ab", buf.String())
}

func TestWriteOutput_unwritable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	err := templating.WriteOutput(filepath.Join(blocker, "x.h"), "a", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening output")
}
