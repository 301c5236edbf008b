package conf

import (
	"errors"
	"fmt"
	"strings"
)

// Parse failure kinds. Every *ParseError unwraps to exactly one of these,
// so callers can classify failures with errors.Is.
var (
	// ErrInvalidFormat reports a structurally ill-formed document, such as
	// a top-level property or a block mixing properties and sections.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidToken reports a malformed token, such as a bad boolean
	// literal or a stray delimiter.
	ErrInvalidToken = errors.New("invalid token")
	// ErrInvalidKeyword reports a section or property name containing
	// bytes outside [A-Za-z0-9_].
	ErrInvalidKeyword = errors.New("invalid keyword")
	// ErrInvalidNumber reports a numeric literal that does not parse as a
	// base-10 signed integer.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrUnexpectedEndOfInput reports source that ends mid-construct.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	// ErrMaxDepthExceeded reports section nesting beyond the configured
	// maximum depth.
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
)

// Query failure kinds. Every *QueryError unwraps to exactly one of these.
var (
	// ErrInvalidQuery reports a path that cannot be resolved against the
	// document: a missing name, a malformed path, or a traversal step that
	// contradicts the shape of the tree.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrUnexpectedDataType reports a resolved value whose type does not
	// match the accessor used to read it.
	ErrUnexpectedDataType = errors.New("unexpected data type")
	// ErrIntegerOverflow reports a numeric value outside the range of the
	// requested integer type.
	ErrIntegerOverflow = errors.New("integer overflow")
	// ErrNotFound reports an introspection path that names no matching
	// section.
	ErrNotFound = errors.New("not found")
)

// ParseError describes a failure while parsing source text. It carries the
// source position and a bounded excerpt of the offending line.
type ParseError struct {
	Err     error    // failure kind, one of the parse sentinel errors
	Pos     Position // location the failure was detected at
	Excerpt string   // bounded window of the source around Pos
	Detail  string   // optional human-oriented context
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Err)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	if e.Excerpt != "" {
		fmt.Fprintf(&b, " (near %q)", e.Excerpt)
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// QueryError describes a failure while resolving a dotted path against a
// parsed document. When a name lookup fails, Suggestions holds up to three
// close matches from the containing scope.
type QueryError struct {
	Err         error    // failure kind, one of the query sentinel errors
	Path        string   // the full dotted path being resolved
	Segment     string   // the segment the resolution failed on, if any
	Detail      string   // optional human-oriented context
	Suggestions []string // near-miss names for the failing segment
}

func (e *QueryError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: path %q", e.Err, e.Path)
	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}
	if len(e.Suggestions) > 0 {
		quoted := make([]string, len(e.Suggestions))
		for i, s := range e.Suggestions {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(quoted, " or "))
	}
	return b.String()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
