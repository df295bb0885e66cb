// Package errs defines the structured diagnostic type shared by every
// resource, container, and codec package: a Kind plus the file offset and
// stream name where it was raised.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind discriminates the taxonomy of failures the resource pipeline can
// raise. Decoders never retry; every Kind propagates straight to the
// top-level operation that called them.
type Kind string

const (
	// TruncatedInput means the buffer was exhausted mid-record.
	TruncatedInput Kind = "truncated_input"
	// UnknownOpcode means an unrecognized block code, line type, chunk
	// type, or script opcode was encountered.
	UnknownOpcode Kind = "unknown_opcode"
	// Corrupt means a value fell outside a documented invariant.
	Corrupt Kind = "corrupt"
	// MissingResource means a (type, name) pair was not present in the index.
	MissingResource Kind = "missing_resource"
	// DuplicateKey means the index carried two entries for one key.
	DuplicateKey Kind = "duplicate_key"
	// OutOfBounds means a decoder write would leave the destination surface.
	OutOfBounds Kind = "out_of_bounds"
)

// Error is the diagnostic payload raised throughout this module.
type Error struct {
	Kind   Kind
	Offset int64
	Stream string
	Detail string
}

func (e *Error) Error() string {
	if e.Stream != "" {
		return fmt.Sprintf("%s: %s (stream=%s offset=%d)", e.Kind, e.Detail, e.Stream, e.Offset)
	}
	return fmt.Sprintf("%s: %s (offset=%d)", e.Kind, e.Detail, e.Offset)
}

// New builds a diagnostic of the given kind.
func New(kind Kind, stream string, offset int64, detail string) error {
	return &Error{Kind: kind, Offset: offset, Stream: stream, Detail: detail}
}

// Newf builds a diagnostic with a formatted detail message.
func Newf(kind Kind, stream string, offset int64, format string, args ...interface{}) error {
	return New(kind, stream, offset, fmt.Sprintf(format, args...))
}

// KindOf extracts the Kind of err, or "" if err is nil or not one of ours.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err is (or wraps) a diagnostic of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Wrapf wraps err with additional context, preserving its Kind if present.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
