// Package output serialises command results.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnsupportedFormat is returned for formats other than json and yaml.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Marshal renders v in the given format. "yml" is accepted for yaml.
func Marshal(v any, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML, "yml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("%w %q (supported: json, yaml)", ErrUnsupportedFormat, format)
	}
}

// Write marshals v and writes it to w.
func Write(w io.Writer, v any, format string) error {
	data, err := Marshal(v, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteFile marshals v and writes it to outputPath, or to stdout if
// outputPath is "-" or empty.
func WriteFile(outputPath string, stdout io.Writer, v any, format string) error {
	if outputPath == "-" || outputPath == "" {
		return Write(stdout, v, format)
	}
	data, err := Marshal(v, format)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0644)
}
