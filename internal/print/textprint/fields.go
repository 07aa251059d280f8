package textprint

import (
	"io"
	"reflect"
	"strings"
	"text/tabwriter"

	"github.com/stealthrocket/tinyget/internal/stream"
)

const separator = "--------------------------------------------------------------------------------\n"

// NewFieldWriter constructs a writer which prints one line per struct field of
// the values it receives, with the field name on the left and the value on the
// right. Field names are taken from the "text" struct tag when present; fields
// tagged "-" are skipped.
func NewFieldWriter[T any](w io.Writer) stream.WriteCloser[T] {
	return &fieldWriter[T]{
		output: tabwriter.NewWriter(w, 0, 4, 2, ' ', 0),
	}
}

type fieldWriter[T any] struct {
	output *tabwriter.Writer
	count  int
	names  []string
	encode []encodeFunc
}

func (f *fieldWriter[T]) init() {
	var v T
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, field := range reflect.VisibleFields(t) {
		if !field.IsExported() || field.Anonymous {
			continue
		}
		name := field.Name
		if tag := field.Tag.Get("text"); tag != "" {
			name, _, _ = strings.Cut(tag, ",")
		}
		if name == "-" {
			continue
		}
		f.names = append(f.names, name)
		f.encode = append(f.encode, encodeFuncOfStructField(field.Type, field.Index))
	}
}

func (f *fieldWriter[T]) Write(values []T) (int, error) {
	if f.names == nil {
		f.init()
	}
	for n := range values {
		v := reflect.ValueOf(&values[n]).Elem()
		if v.Kind() == reflect.Pointer {
			v = v.Elem()
		}
		if f.count++; f.count > 1 {
			if _, err := io.WriteString(f.output, separator); err != nil {
				return n, err
			}
		}
		for i, name := range f.names {
			if _, err := io.WriteString(f.output, name+"\t"); err != nil {
				return n, err
			}
			if err := f.encode[i](f.output, v); err != nil {
				return n, err
			}
			if _, err := io.WriteString(f.output, "\n"); err != nil {
				return n, err
			}
		}
	}
	return len(values), nil
}

func (f *fieldWriter[T]) Close() error {
	return f.output.Flush()
}
