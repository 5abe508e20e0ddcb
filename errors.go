package skema

import (
	"errors"
	"fmt"
	"strings"
)

// Construction and interpretation errors. Construction errors indicate a
// mistake in a schema definition and are never retried.
var (
	// ErrUnrecognizedLiteral: a value passed where a schema was expected could
	// not be lifted to a literal schema.
	ErrUnrecognizedLiteral = errors.New("skema: unrecognized literal")
	// ErrUnhandledTag: a node reached an interpreter without a handler.
	ErrUnhandledTag = errors.New("skema: unhandled tag")
	// ErrMissingAnchor: a node that must be addressable has no title.
	ErrMissingAnchor = errors.New("skema: missing anchor")
	// ErrDuplicateTitle: two different nodes share a title.
	ErrDuplicateTitle = errors.New("skema: duplicate title")
	// ErrUnknownReference: a key token does not resolve to a registered node.
	ErrUnknownReference = errors.New("skema: unknown reference")
	ErrNilSchema        = errors.New("skema: nil schema")
	ErrBadPattern       = errors.New("skema: bad pattern")
)

// Issue codes reported by validation.
const (
	CodeInvalidType  = "invalid_type"
	CodeInvalidValue = "invalid_value"
	CodePattern      = "pattern"
	CodeTooSmall     = "too_small"
	CodeTooBig       = "too_big"
	CodeTooShort     = "too_short"
	CodeTooLong      = "too_long"
	CodeRequired     = "required"
	CodeInvalidKey   = "invalid_key"
	CodeNoMatch      = "no_match"

	// CodeAmbiguous is advisory: one input entry satisfied several declared
	// object properties.
	CodeAmbiguous = "ambiguous_match"

	// CodeDuplicateKey is reported by input decoders, not by validation.
	CodeDuplicateKey = "duplicate_key"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /columns/0/width).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: the schema title or the expected shape.
	// Params carries structured parameters (e.g., {"min":0, "got":-1}).
	Params map[string]any
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
