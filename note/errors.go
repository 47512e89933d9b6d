package note

import "github.com/pkg/errors"

// Error kinds surfaced by this package. Failure sites annotate these with
// errors.Wrapf; use errors.Cause to classify a returned error.
var (
	// ErrWrongType reports an input whose type lacks the capability an
	// operation requires (not string-like, not numeric-castable).
	ErrWrongType = errors.New("wrong type")

	// ErrInvalidFormat reports a string that does not match the note
	// string grammar.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidValue reports a syntactically acceptable value that is out
	// of range or has no mapping.
	ErrInvalidValue = errors.New("invalid value")
)
