package templating

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/cecgen/enumdesc"
)

// Stdio names standard input or output in place of a path.
const Stdio = "-"

// ReadTemplate returns the template stored at tplPath. An
// empty path yields an empty template, which selects the
// generator's default; Stdio reads from stdin.
func ReadTemplate(tplPath string, stdin io.Reader) (string, error) {
	const errCtx = "reading template"

	switch tplPath {
	case "":
		return "", nil
	case Stdio:
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("%s: reading stdin: %w", errCtx, err)
		}

		return string(content), nil
	}

	content, err := os.ReadFile(tplPath) //nolint:gosec // path from CLI flag
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return string(content), nil
}

// OutputPath expands {name}, {fullName} and {type} in
// pattern. Scope separators ("::" and ".") in the full name
// become underscores so the result stays a single path
// element. Unknown placeholders are kept.
func OutputPath(pattern string, ed *enumdesc.EnumDescription) string {
	if pattern == "" || pattern == Stdio {
		return pattern
	}

	vars := map[string]interface{}{
		"name":     ed.Name,
		"fullName": pathSafe(ed.FullName),
		"type":     pathSafe(ed.Type),
	}

	return fasttemplate.ExecuteStringStd(pattern, "{", "}", vars)
}

var pathReplacer = strings.NewReplacer(
	"::", "_",
	".", "_",
	" ", "_",
	"/", "_",
	string(filepath.Separator), "_",
)

func pathSafe(str string) string {
	return pathReplacer.Replace(str)
}

// WriteOutput stores text at outPath, creating parent
// directories. An empty path or Stdio writes to stdout.
func WriteOutput(outPath string, text string, stdout io.Writer) error {
	const errCtx = "writing output"

	out, closer, err := openOutput(outPath, stdout)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if _, err := io.WriteString(out, text); err != nil {
		_ = closer() //nolint:errcheck // write error takes precedence

		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := closer(); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// openOutput returns the writer for outPath together with
// the function that finalizes it.
func openOutput(
	outPath string,
	stdout io.Writer,
) (io.Writer, func() error, error) {
	const errCtx = "opening output"

	if outPath == "" || outPath == Stdio {
		return stdout, func() error { return nil }, nil
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:gosec // generated sources are world readable
			return nil, nil, fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	fi, err := os.OpenFile( //nolint:gosec // path from CLI flag
		outPath,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		0o666,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return fi, fi.Close, nil
}
