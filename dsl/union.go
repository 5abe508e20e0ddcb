package dsl

import skema "github.com/reoring/skema"

// Or returns a schema matching any of alts. The order of alts only affects
// documentation.
func Or(alts ...skema.Node) *skema.Or {
	mustNodes("Or", alts...)
	return &skema.Or{Alts: alts}
}

// Enum is shorthand for an Or of string literals.
func Enum(values ...string) *skema.Or {
	alts := make([]skema.Node, len(values))
	for i, v := range values {
		alts[i] = Literal(v)
	}
	return &skema.Or{Alts: alts}
}
