// Package skema is a runtime schema description language.
//
// A schema is a tree of immutable tagged nodes (String, Number, Boolean, Null,
// Function, Tuple, List, Object, Dict, Or, Annotation) built once through the
// constructors in dsl/ and then handed to independent interpreters:
//
//   - validate/: structural validation of a Go value (bool or Issues)
//   - jsonschema/: projection to a JSON-Schema-like wire document
//   - htmldoc/: HTML documentation with links between named schemas
//
// Every interpreter is a Visitor dispatched over the closed tag set, so adding
// a tag breaks the build of each interpreter until it handles it.
//
// Named schemas are collected in an explicit Registry. The registry hands out
// key tokens so a named schema can be used as a key in a map literal passed to
// the constructor library.
//
// Typical usage:
//
//	b := dsl.NewBuilder()
//	fooKey := b.Named("FooKey", "foo key", dsl.Pattern(`foo[0-9]+`))
//	s := b.Named("Foos", "flags by foo", map[string]any{b.Key(fooKey): dsl.Boolean()})
//	reg := b.MustBuild()
//
//	ok := validate.Valid(s, map[string]any{"foo1": true})
//	wire, err := jsonschema.Project(s)
//	page := htmldoc.New().Document(reg.Nodes())
package skema
