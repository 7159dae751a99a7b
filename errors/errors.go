package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode  Phase = "decode"  // blob header and table construction
	PhaseResolve Phase = "resolve" // cross-table reference resolution
	PhaseReflect Phase = "reflect" // owned object graph materialization
)

// Kind categorizes the error
type Kind string

const (
	KindMalformedHeader  Kind = "malformed_header"  // bad table count or descriptor
	KindUnsupportedTable Kind = "unsupported_table" // unrecognized table type
	KindDuplicateTable   Kind = "duplicate_table"   // two descriptors of one type
	KindOutOfBounds      Kind = "out_of_bounds"     // range points outside the blob
	KindSizeMismatch     Kind = "size_mismatch"     // table size not a record multiple
	KindMalformedTable   Kind = "malformed_table"   // table contents violate the format
	KindNotInitialized   Kind = "not_initialized"   // reader used before a successful decode
)

// Error is the structured error type used throughout the decoder
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Table  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Table != "" {
		b.WriteString(" in ")
		b.WriteString(e.Table)
		b.WriteString(" table")
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Table sets the table name
func (b *Builder) Table(name string) *Builder {
	b.err.Table = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MalformedHeader creates a header parse error
func MalformedHeader(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedHeader,
		Detail: detail,
		Cause:  cause,
	}
}

// DuplicateTable creates an error for a repeated table descriptor
func DuplicateTable(table string) *Error {
	return &Error{
		Phase: PhaseDecode,
		Kind:  KindDuplicateTable,
		Table: table,
	}
}

// OutOfBounds creates an error for a range outside the blob
func OutOfBounds(phase Phase, table string, offset, size uint32, limit int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Table:  table,
		Detail: fmt.Sprintf("range [%d, %d) exceeds length %d", offset, uint64(offset)+uint64(size), limit),
	}
}

// SizeMismatch creates an error for a table whose byte size is not a
// whole multiple of its record size
func SizeMismatch(table string, size, recordSize uint32) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindSizeMismatch,
		Table:  table,
		Detail: fmt.Sprintf("size %d is not a multiple of record size %d", size, recordSize),
	}
}

// MalformedTable creates an error for table contents that violate the format
func MalformedTable(table, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedTable,
		Table:  table,
		Detail: detail,
	}
}

// NotInitialized creates an error for a reader used before decoding
func NotInitialized(what string) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindNotInitialized,
		Detail: what + " used before a successful decode",
	}
}
