// Package descriptors loads component, condition and pack descriptors from
// YAML files.
package descriptors

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/StinkyLord/cbuild-idkit/internal/model"
)

// ErrEmptyFile is returned when a descriptor file lists nothing.
var ErrEmptyFile = errors.New("descriptor file has no entries")

// File is the content of a descriptor file.
type File struct {
	Components []model.Component `yaml:"components"`
	Conditions []model.Component `yaml:"conditions"`
	Packages   []model.Package   `yaml:"packages"`
}

// Len returns the total number of entries.
func (f *File) Len() int {
	return len(f.Components) + len(f.Conditions) + len(f.Packages)
}

// Load reads and decodes the descriptor file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read descriptor file %q: %w", path, err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode decodes a descriptor document from r. Unknown keys are rejected so
// that a misspelt attribute does not silently vanish from an identifier.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyFile
		}
		return nil, fmt.Errorf("invalid descriptor YAML: %w", err)
	}
	if f.Len() == 0 {
		return nil, ErrEmptyFile
	}
	return &f, nil
}
