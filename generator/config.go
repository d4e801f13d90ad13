package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Config holds the constants a Generator writes into the
// generated text.
type Config struct {
	// DataTypeKeyword prefixes every key/value declaration
	// (e.g. "static constexpr").
	DataTypeKeyword string `json:"dataTypeKeyword" yaml:"dataTypeKeyword"`

	// VersionLabel names the tool in the signature line.
	VersionLabel string `json:"versionLabel" yaml:"versionLabel"`

	// DefaultTemplate is expanded when the caller supplies
	// no template.
	DefaultTemplate string `json:"defaultTemplate" yaml:"defaultTemplate"`
}

const (
	// DefaultDataTypeKeyword is the declaration keyword of
	// DefaultConfig.
	DefaultDataTypeKeyword = "static constexpr"

	// DefaultVersionLabel is the signature label of
	// DefaultConfig.
	DefaultVersionLabel = "cecgen 1.0"
)

// DefaultTemplate renders an enum class as a C++ struct of
// constants. It uses every tag the generator understands.
const DefaultTemplate = `#pragma once

#include <cstddef>

{cec:enum:keepComment}
struct {cec:enum:name}
{
    using value_type = {cec:enum:type};

    {cec:enum:keyValueList}

    static constexpr {cec:enum:type} min = {cec:enum:min};
    static constexpr {cec:enum:type} max = {cec:enum:max};
    static constexpr std::size_t size = {cec:enum:size};
    static constexpr {cec:enum:type} first = {cec:enum:firstKey};
    static constexpr {cec:enum:type} last = {cec:enum:lastKey};

    static constexpr const char* names[size] = {
        {cec:enum:keyList}
    };

    static constexpr const char* qualifiedName = "{cec:enum:fullName}";
};
`

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		DataTypeKeyword: DefaultDataTypeKeyword,
		VersionLabel:    DefaultVersionLabel,
		DefaultTemplate: DefaultTemplate,
	}
}

// LoadConfig reads a YAML or JSON configuration file and
// overlays its non-empty fields onto DefaultConfig. The
// format is chosen from the file extension; anything but
// ".json" is parsed as YAML.
func LoadConfig(path string) (Config, error) {
	const errCtx = "loading config"

	content, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	var fc Config

	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &fc)
	} else {
		err = yaml.Unmarshal(content, &fc)
	}

	if err != nil {
		return Config{}, fmt.Errorf(
			"%s: decoding %s: %w", errCtx, path, err,
		)
	}

	return DefaultConfig().Merge(fc), nil
}

// Merge returns cfg with every non-empty field of over
// applied on top.
func (cfg Config) Merge(over Config) Config {
	if over.DataTypeKeyword != "" {
		cfg.DataTypeKeyword = over.DataTypeKeyword
	}

	if over.VersionLabel != "" {
		cfg.VersionLabel = over.VersionLabel
	}

	if over.DefaultTemplate != "" {
		cfg.DefaultTemplate = over.DefaultTemplate
	}

	return cfg
}
