// Package errors provides structured error types for the rdat decoder.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes the affected table name, a detail message, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
//		Table("resource").
//		Detail("descriptor range exceeds blob length").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.DuplicateTable("string")
//	err := errors.SizeMismatch("function", 46, 44)
//
// All errors implement the standard error interface and support errors.Is/As.
// Matching with errors.Is compares Phase and Kind, so callers can test for an
// error category without caring about the detail:
//
//	if errors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindOutOfBounds}) {
//		// no reflection data available
//	}
package errors
