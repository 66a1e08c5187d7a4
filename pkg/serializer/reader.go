package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Reader deserializes values from a configured source.
type Reader struct {
	format Format
	in     io.Reader
	closer io.Closer
	closed bool
}

// NewReader creates a Reader decoding the given format from in.
// Unknown formats fall back to JSON.
func NewReader(format Format, in io.Reader) *Reader {
	if format.IsUnknown() {
		format = FormatJSON
	}
	return &Reader{format: format, in: in}
}

// NewFileReader opens path and returns a Reader decoding the given format.
func NewFileReader(format Format, path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %q: %w", path, err)
	}

	r := NewReader(format, f)
	r.closer = f
	return r, nil
}

// Deserialize decodes the source into v.
func (r *Reader) Deserialize(v any) error {
	switch r.format {
	case FormatYAML:
		if err := yaml.NewDecoder(r.in).Decode(v); err != nil {
			return fmt.Errorf("failed to deserialize yaml: %w", err)
		}
		return nil
	default:
		if err := json.NewDecoder(r.in).Decode(v); err != nil {
			return fmt.Errorf("failed to deserialize json: %w", err)
		}
		return nil
	}
}

// Close releases the underlying file, if any. Safe to call multiple times.
func (r *Reader) Close() error {
	if r.closed || r.closer == nil {
		return nil
	}
	r.closed = true
	return r.closer.Close()
}
