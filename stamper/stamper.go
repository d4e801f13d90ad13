package stamper

import (
	"fmt"
	"os"
	"strings"

	"github.com/valyala/fasttemplate"
)

// Stamps maps workspace status keys to their values.
type Stamps map[string]interface{}

// Load merges the given status files, later files
// overriding earlier ones. Lines without a space separator
// are skipped.
func Load(infoFiles ...string) (Stamps, error) {
	const errCtx = "loading stamps"

	stamps := make(Stamps)

	for _, sf := range infoFiles {
		content, err := os.ReadFile(sf) //nolint:gosec // paths from CLI flags
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		for _, line := range strings.Split(string(content), "\n") {
			key, val, ok := strings.Cut(strings.TrimRight(line, "\r"), " ")
			if ok && key != "" {
				stamps[key] = val
			}
		}
	}

	return stamps, nil
}

// Apply replaces {KEY} placeholders in label.
func (st Stamps) Apply(label string) string {
	if len(st) == 0 || !strings.Contains(label, "{") {
		return label
	}

	return fasttemplate.ExecuteStringStd(label, "{", "}", st)
}

// StampLabel loads infoFiles and applies them to label.
func StampLabel(infoFiles []string, label string) (string, error) {
	const errCtx = "stamping version label"

	stamps, err := Load(infoFiles...)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return stamps.Apply(label), nil
}
