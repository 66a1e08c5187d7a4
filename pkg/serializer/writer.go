package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format identifies an output encoding.
type Format string

const (
	// FormatJSON encodes output as indented JSON.
	FormatJSON Format = "json"

	// FormatYAML encodes output as YAML.
	FormatYAML Format = "yaml"

	// FormatTable renders output as a flattened FIELD/VALUE table.
	FormatTable Format = "table"
)

// IsUnknown reports whether the format is not one of the supported encodings.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatTable:
		return false
	}
	return true
}

// SupportedFormats returns the names of all supported output formats.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatYAML), string(FormatTable)}
}

// FormatFromPath guesses the encoding from a file extension.
// Unknown extensions default to YAML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".npproj":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatYAML
}

// Serializer writes a value to a configured destination in a configured format.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is implemented by serializers holding resources that need releasing.
type Closer interface {
	Close() error
}

// Writer serializes values to an io.Writer in the configured format.
type Writer struct {
	format Format
	out    io.Writer
	closer io.Closer
	closed bool
}

// NewWriter creates a Writer for the given format and destination.
// Unknown formats fall back to JSON.
func NewWriter(format Format, out io.Writer) *Writer {
	if format.IsUnknown() {
		format = FormatJSON
	}
	if out == nil {
		out = os.Stdout
	}
	return &Writer{format: format, out: out}
}

// NewStdoutWriter creates a Writer targeting stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// NewFileWriterOrStdout creates a writer for the given path. Empty, blank, or
// "-" paths target stdout. Parent directories are not created; a missing
// directory is reported as an error rather than silently falling back.
func NewFileWriterOrStdout(format Format, path string) (Serializer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == StdoutURI {
		return NewStdoutWriter(format), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}

	w := NewWriter(format, f)
	w.closer = f
	return w, nil
}

// Serialize writes v to the destination in the configured format.
func (w *Writer) Serialize(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch w.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return w.writeTable(v)
	default:
		enc := json.NewEncoder(w.out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		return nil
	}
}

// Close releases the underlying file, if any. Safe to call multiple times
// and safe on stdout writers.
func (w *Writer) Close() error {
	if w.closed || w.closer == nil {
		return nil
	}
	w.closed = true
	return w.closer.Close()
}

// writeTable renders v as a two-column table with flattened field paths.
func (w *Writer) writeTable(v any) error {
	rows := flatten("", reflect.ValueOf(v))

	tw := tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	if len(rows) == 0 {
		fmt.Fprintln(tw, "<empty>\t")
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row.key, row.value)
	}
	return tw.Flush()
}

type tableRow struct {
	key   string
	value string
}

// flatten walks nested structs, maps, and slices producing dotted field paths.
func flatten(prefix string, v reflect.Value) []tableRow {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return []tableRow{{key: prefix, value: "<nil>"}}
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		var rows []tableRow
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			rows = append(rows, flatten(joinPath(prefix, field.Name), v.Field(i))...)
		}
		return rows
	case reflect.Map:
		keys := make([]string, 0, v.Len())
		byKey := make(map[string]reflect.Value, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			k := fmt.Sprintf("%v", iter.Key().Interface())
			keys = append(keys, k)
			byKey[k] = iter.Value()
		}
		sort.Strings(keys)
		var rows []tableRow
		for _, k := range keys {
			rows = append(rows, flatten(joinPath(prefix, k), byKey[k])...)
		}
		return rows
	case reflect.Slice, reflect.Array:
		var rows []tableRow
		for i := 0; i < v.Len(); i++ {
			rows = append(rows, flatten(fmt.Sprintf("%s[%d]", prefix, i), v.Index(i))...)
		}
		return rows
	case reflect.Invalid:
		return nil
	default:
		return []tableRow{{key: prefix, value: fmt.Sprintf("%v", v.Interface())}}
	}
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
