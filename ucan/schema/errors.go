// Package schema implements structural validation of a UCAN payload and its
// capabilities: the shape-level rules a Model must satisfy before it can be
// signed or trusted, independent of any policy decision about what the
// capabilities actually authorize.
package schema

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError is the single tagged error type for shape-level validation
// failures: missing or wrong-typed fields, malformed capabilities, bad
// versions. Its message includes the JSON-Pointer-style path of the
// offending field, e.g. "att[0].can".
type ParseError struct {
	path string
	err  error
}

func (e *ParseError) Name() string { return "ParseError" }

func (e *ParseError) Error() string {
	if e.path == "" {
		return e.err.Error()
	}
	return fmt.Sprintf("%s: %s", e.path, e.err.Error())
}

func (e *ParseError) Unwrap() error { return e.err }

// NewParseError builds a ParseError rooted at path, wrapping the given
// format/args as the underlying message. It captures a stack trace the way
// the rest of this module's error types do.
func NewParseError(path string, format string, args ...any) *ParseError {
	return &ParseError{path: path, err: errors.Errorf(format, args...)}
}

// RangeError tags failures caused by an unsupported or unrecognized
// multicodec. signature.New returns one for an unknown signature algorithm
// code. The did package does not use it: its errors for an unknown DID key
// algorithm or a P-256 key over the compressed-only length limit are plain
// errors.
type RangeError struct {
	err error
}

func (e *RangeError) Name() string { return "RangeError" }

func (e *RangeError) Error() string { return e.err.Error() }

func (e *RangeError) Unwrap() error { return e.err }

// NewRangeError builds a RangeError from a format string, capturing a stack
// trace via github.com/pkg/errors.
func NewRangeError(format string, args ...any) *RangeError {
	return &RangeError{err: errors.Errorf(format, args...)}
}
