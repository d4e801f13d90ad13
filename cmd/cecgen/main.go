// Command cecgen expands a cec template for one enum
// class described in a YAML or JSON file and writes the
// generated source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/byte4ever/cecgen/enumdesc"
	"github.com/byte4ever/cecgen/generator"
	"github.com/byte4ever/cecgen/stamper"
	"github.com/byte4ever/cecgen/templating"
)

// sliceFlag implements flag.Value for repeated string
// flags.
type sliceFlag []string

func (s *sliceFlag) String() string {
	if s == nil {
		return ""
	}

	return strings.Join(*s, ",")
}

func (s *sliceFlag) Set(val string) error {
	*s = append(*s, val)

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	const errCtx = "running cecgen"

	var (
		enumFile     string
		tplFile      string
		output       string
		configFile   string
		versionLabel string
		keyword      string
		stampFiles   sliceFlag
	)

	flag.StringVar(
		&enumFile, "enum", "",
		"Enum description file (.yaml, .yml or .json)",
	)

	flag.StringVar(
		&tplFile, "template", "",
		"Template file, - for stdin (built-in default if empty)",
	)

	flag.StringVar(
		&output, "output", "",
		"Output path pattern with {name}, {fullName}, {type} (stdout if empty)",
	)

	flag.StringVar(
		&configFile, "config", "",
		"YAML or JSON generator configuration file",
	)

	flag.StringVar(
		&versionLabel, "version_label", "",
		"Tool label in the signature line, may use {STAMP} placeholders",
	)

	flag.StringVar(
		&keyword, "keyword", "",
		"Declaration keyword for key/value lists",
	)

	flag.Var(
		&stampFiles, "stamp_info_file",
		"Workspace status file for the version label (repeatable)",
	)

	flag.Parse()

	if enumFile == "" {
		return fmt.Errorf("%s: %w", errCtx, errors.New("-enum is required"))
	}

	cfg := generator.DefaultConfig()

	if configFile != "" {
		loaded, err := generator.LoadConfig(configFile)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		cfg = loaded
	}

	cfg = cfg.Merge(generator.Config{
		VersionLabel:    versionLabel,
		DataTypeKeyword: keyword,
	})

	label, err := stamper.StampLabel(stampFiles, cfg.VersionLabel)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	cfg.VersionLabel = label

	ed, err := enumdesc.Load(enumFile)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	tpl, err := templating.ReadTemplate(tplFile, os.Stdin)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	gen := generator.New(
		cfg,
		generator.NewLogDiagnostics(slog.Default(), "enum", ed.FullName),
	)

	code := gen.Generate(&ed, tpl)
	if code == "" {
		return fmt.Errorf("%s: empty result for %s", errCtx, ed.FullName)
	}

	outPath := templating.OutputPath(output, &ed)

	if err := templating.WriteOutput(outPath, code, os.Stdout); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if outPath != "" && outPath != templating.Stdio {
		slog.Info("generated enum", "enum", ed.FullName, "path", outPath)
	}

	return nil
}
