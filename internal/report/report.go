// Package report renders a rotation report in the format chosen with --report.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/raoulx24/bak-rotate/internal/rotator"
)

type Format string

const (
	None Format = "none"
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var Formats = []Format{None, Text, JSON, YAML, TOML}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return None, nil
	case None, Text, JSON, YAML, TOML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return None, fmt.Errorf("unknown report format %q (expected: none, text, json, yaml, toml)", s)
	}
}

// Write encodes rep to w. None writes nothing.
func Write(w io.Writer, f Format, rep *rotator.Report) error {
	if rep == nil || f == None {
		return nil
	}

	switch f {
	case Text:
		return writeText(w, rep)

	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)

	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()

	case TOML:
		if err := toml.NewEncoder(w).Encode(rep); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}
