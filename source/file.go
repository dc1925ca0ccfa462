package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/teamdraw/types"
)

// File reads the roster from a YAML or JSON file on every load.
//
// The document holds a top-level "people" list:
//
//	people:
//	  - first_name: Jan
//	    last_name: Kowalski
//	    position: Developer
//	    department: R&D
//	    sequence_no: 1
//
// JSON input uses the same field names; it is parsed by the YAML decoder.
type File struct {
	path string
}

var _ types.RosterSource = (*File)(nil)

type rosterDocument struct {
	People []types.Person `yaml:"people"`
}

// NewFile creates a roster source for path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the roster file path.
func (f *File) Path() string {
	return f.path
}

// LoadRoster reads and validates the roster file.
//
// Returns:
//   - []types.Person: The roster in file order
//   - error: Read or decode error, or types.ErrInvalidRoster for an incomplete row
func (f *File) LoadRoster(ctx context.Context) ([]types.Person, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	return Decode(bytes.NewReader(data), f.path)
}

// Decode parses a roster document from r.
//
// Unknown fields are rejected so a misspelled column fails loudly instead of
// producing empty values.
//
// Parameters:
//   - r: YAML or JSON roster document
//   - origin: Name used in error messages (typically the file path)
//
// Returns:
//   - []types.Person: The validated roster (empty for an empty document)
//   - error: Decode error or types.ErrInvalidRoster
func Decode(r io.Reader, origin string) ([]types.Person, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc rosterDocument
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %w", types.ErrInvalidRoster, origin, err)
	}

	return validate(doc.People, origin)
}
