package dsl

import (
	"fmt"
	"math"

	skema "github.com/reoring/skema"
)

// String returns an unconstrained string schema.
func String() *skema.String { return &skema.String{} }

// Literal returns a schema matching exactly s.
func Literal(s string) *skema.String { return &skema.String{Literal: &s} }

// Pattern returns a string schema constrained by an ECMAScript regular
// expression. An invalid pattern is a definition error and panics.
func Pattern(re string) *skema.String {
	s, err := skema.NewPattern(re)
	if err != nil {
		panic(err)
	}
	return s
}

// Number returns an unconstrained number schema.
func Number() *skema.Number { return &skema.Number{} }

// NumberLit returns a schema matching exactly f.
func NumberLit(f float64) *skema.Number { return &skema.Number{Literal: &f} }

// Interval returns a number schema with inclusive bounds. An infinite bound
// is treated as absent.
func Interval(lo, hi float64) *skema.Number {
	if lo > hi {
		panic(fmt.Errorf("dsl: empty interval [%v, %v]", lo, hi))
	}
	n := &skema.Number{}
	if !math.IsInf(lo, 0) {
		n.Min = &lo
	}
	if !math.IsInf(hi, 0) {
		n.Max = &hi
	}
	return n
}

// AtLeast returns a number schema bounded below.
func AtLeast(lo float64) *skema.Number { return Interval(lo, math.Inf(1)) }

// AtMost returns a number schema bounded above.
func AtMost(hi float64) *skema.Number { return Interval(math.Inf(-1), hi) }

func Boolean() *skema.Boolean { return &skema.Boolean{} }

func Null() *skema.Null { return &skema.Null{} }

// Function returns a schema for callables. returns may be nil.
func Function(returns skema.Node, params ...skema.Node) *skema.Function {
	mustNodes("Function", params...)
	return &skema.Function{Returns: returns, Params: params}
}

func mustNodes(ctor string, ns ...skema.Node) {
	for i, n := range ns {
		if n == nil {
			panic(fmt.Errorf("dsl: %s argument %d: %w", ctor, i, skema.ErrNilSchema))
		}
	}
}
