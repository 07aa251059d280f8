// Package stream is a library of generic types designed to work on streams of
// values.
package stream

import "io"

// Writer is an interface implemented by types that consume a stream of values
// of type T.
type Writer[T any] interface {
	// Writes values to the stream, returning the number of values written and
	// any error that occurred.
	Write(values []T) (int, error)
}

// WriteCloser represents a closable stream of values of T.
//
// WriteCloser is like io.WriteCloser for values of any type.
type WriteCloser[T any] interface {
	Writer[T]
	io.Closer
}

// WriteAll writes values to w, then closes it. The first error encountered is
// returned; w is closed even if writing failed.
func WriteAll[T any](w WriteCloser[T], values ...T) error {
	_, err := w.Write(values)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return err
}
