package enumdesc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Format selects the document encoding of a description.
type Format int

// Supported formats.
const (
	FormatYAML Format = iota
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ErrUnknownFormat is returned for file extensions that are
// neither YAML nor JSON.
var ErrUnknownFormat = errors.New("unknown description format")

var validate = validator.New()

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads, decodes and validates the description stored
// at path.
func Load(path string) (EnumDescription, error) {
	const errCtx = "loading enum description"

	format, err := FormatFromPath(path)
	if err != nil {
		return EnumDescription{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	content, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return EnumDescription{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	ed, err := Decode(content, format)
	if err != nil {
		return EnumDescription{}, fmt.Errorf(
			"%s: %s: %w", errCtx, path, err,
		)
	}

	return ed, nil
}

// Decode parses a description, fills FullName from Name
// when it is missing and validates the result.
func Decode(data []byte, format Format) (EnumDescription, error) {
	const errCtx = "decoding enum description"

	var (
		ed  EnumDescription
		err error
	)

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &ed)
	case FormatJSON:
		err = json.Unmarshal(data, &ed)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	if err != nil {
		return EnumDescription{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	if ed.FullName == "" {
		ed.FullName = ed.Name
	}

	if err := Validate(&ed); err != nil {
		return EnumDescription{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	return ed, nil
}

// Validate checks the required fields of ed. Field errors
// are joined into one readable message.
func Validate(ed *EnumDescription) error {
	err := validate.Struct(ed)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return fmt.Errorf("validating: %w", err)
	}

	messages := make([]string, 0, len(valErrs))
	for _, ve := range valErrs {
		messages = append(
			messages,
			ve.Namespace()+": "+formatValidationError(ve),
		)
	}

	return &ValidationError{
		Message: strings.Join(messages, "; "),
		err:     err,
	}
}

// ValidationError reports an invalid description.
type ValidationError struct {
	Message string
	err     error
}

func (ve *ValidationError) Error() string {
	return "invalid enum description: " + ve.Message
}

// Unwrap returns the underlying validator error.
func (ve *ValidationError) Unwrap() error {
	return ve.err
}

func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}
