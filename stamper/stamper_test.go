package stamper_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/cecgen/stamper"
)

// writeStatus creates a workspace status file and returns
// its path.
func writeStatus(
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

func TestStampLabel_substitutes_status_values(t *testing.T) {
	t.Parallel()

	sf := writeStatus(
		t, t.TempDir(), "stable-status.txt",
		"STABLE_VERSION 1.4.2\nBUILD_SCM_REVISION deadbeef\n",
	)

	got, err := stamper.StampLabel(
		[]string{sf},
		"cecgen {STABLE_VERSION} ({BUILD_SCM_REVISION})",
	)

	require.NoError(t, err)
	assert.Equal(t, "cecgen 1.4.2 (deadbeef)", got)
}

func TestStampLabel_unknown_placeholder_kept(t *testing.T) {
	t.Parallel()

	sf := writeStatus(t, t.TempDir(), "s.txt", "KNOWN v\n")

	got, err := stamper.StampLabel(
		[]string{sf}, "{KNOWN} {UNKNOWN}",
	)

	require.NoError(t, err)
	assert.Equal(t, "v {UNKNOWN}", got)
}

func TestStampLabel_without_files(t *testing.T) {
	t.Parallel()

	got, err := stamper.StampLabel(nil, "cecgen {STABLE_VERSION}")

	require.NoError(t, err)
	assert.Equal(t, "cecgen {STABLE_VERSION}", got)
}

func TestStampLabel_missing_file(t *testing.T) {
	t.Parallel()

	_, err := stamper.StampLabel(
		[]string{"/nonexistent/status.txt"}, "x",
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stamping version label")
	assert.Contains(t, err.Error(), "loading stamps")
}

func TestLoad_later_file_overrides_earlier(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sf1 := writeStatus(t, dir, "s1.txt", "VER 1.0\nONLY_FIRST a\n")
	sf2 := writeStatus(t, dir, "s2.txt", "VER 2.0\n")

	stamps, err := stamper.Load(sf1, sf2)

	require.NoError(t, err)
	assert.Equal(t, "2.0", stamps["VER"])
	assert.Equal(t, "a", stamps["ONLY_FIRST"])
}

func TestLoad_skips_malformed_lines(t *testing.T) {
	t.Parallel()

	sf := writeStatus(
		t, t.TempDir(), "s.txt",
		"GOOD value\r\nBADLINE\n\n leading\nALSO_GOOD two words\n",
	)

	stamps, err := stamper.Load(sf)

	require.NoError(t, err)
	assert.Equal(
		t,
		stamper.Stamps{"GOOD": "value", "ALSO_GOOD": "two words"},
		stamps,
	)
}

func TestStamps_Apply_no_placeholders(t *testing.T) {
	t.Parallel()

	st := stamper.Stamps{"A": "b"}

	assert.Equal(t, "plain", st.Apply("plain"))
	assert.Equal(t, "b", st.Apply("{A}"))
}

func FuzzApply(f *testing.F) {
	f.Add("cecgen {V}", "V", "1")
	f.Add("{", "k", "v")
	f.Add("}", "k", "v")
	f.Add("", "k", "v")

	f.Fuzz(func(t *testing.T, label, key, val string) {
		st := stamper.Stamps{key: val}

		// Only verifies it does not panic.
		_ = st.Apply(label)
	})
}
