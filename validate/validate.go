// Package validate checks Go values against skema schemas.
//
// Accepted values are the shapes produced by encoding/json and yaml decoders
// (string, float64, json.Number, bool, nil, []any, map[string]any) plus their
// typed Go counterparts: any numeric kind, named strings, slices, arrays,
// maps, structs (viewed through json tags) and functions.
//
// Computing the verdict is separate from reacting to it. Every
// non-speculative check passes through an AssertFunc: the default returns the
// verdict unchanged, Collect records Issues, and callers may log, count or
// abort instead.
package validate

import (
	"fmt"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/i18n"
)

// Site describes the check an AssertFunc is called for.
type Site struct {
	Path   skema.PathRef
	Node   skema.Node
	Code   string // issue code used when the check fails
	Params map[string]any
}

// AssertFunc consumes the verdict of one check and returns the verdict the
// validator continues with.
type AssertFunc func(ok bool, at Site) bool

// Validator walks a schema and a value in lock-step. It never modifies the
// value. The zero value is ready to use.
type Validator struct {
	assert    AssertFunc
	ambiguity func(skema.Issue)
}

// Option configures a Validator.
type Option func(*Validator)

// WithAssert installs the assertion hook.
func WithAssert(fn AssertFunc) Option { return func(v *Validator) { v.assert = fn } }

// WithAmbiguity reports object entries that satisfy more than one declared
// property. Such values are still valid.
func WithAmbiguity(fn func(skema.Issue)) Option { return func(v *Validator) { v.ambiguity = fn } }

func New(opts ...Option) *Validator {
	v := &Validator{}
	for _, o := range opts {
		o(v)
	}
	return v
}

// Valid reports whether val conforms to s.
func (v *Validator) Valid(s skema.Node, val any) bool {
	return checker{v: v, val: val, path: skema.Root()}.run(s)
}

// Valid reports whether val conforms to s.
func Valid(s skema.Node, val any) bool { return (&Validator{}).Valid(s, val) }

// Check returns skema.Issues describing why val does not conform to s, or nil.
func Check(s skema.Node, val any) error {
	var iss skema.Issues
	New(WithAssert(Collect(&iss))).Valid(s, val)
	if len(iss) == 0 {
		return nil
	}
	return iss
}

// Must panics with the Issues of Check when val does not conform to s.
func Must(s skema.Node, val any) {
	if err := Check(s, val); err != nil {
		panic(err)
	}
}

// Ambiguities lists the entries of val that satisfy several declared
// properties of the same object schema.
func Ambiguities(s skema.Node, val any) skema.Issues {
	var out skema.Issues
	New(WithAmbiguity(func(it skema.Issue) { out = append(out, it) })).Valid(s, val)
	return out
}

// Collect returns an AssertFunc that appends an Issue for every failed check.
func Collect(dst *skema.Issues) AssertFunc {
	return func(ok bool, at Site) bool {
		if !ok {
			data := make(map[string]string, len(at.Params))
			for k, p := range at.Params {
				data[k] = fmt.Sprint(p)
			}
			it := skema.IssueAt(at.Path, at.Code, i18n.T(at.Code, data), at.Params)
			it.Hint = skema.Describe(at.Node)
			*dst = append(*dst, it)
		}
		return ok
	}
}
