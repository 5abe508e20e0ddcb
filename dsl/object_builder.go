package dsl

import (
	"fmt"
	"strings"

	skema "github.com/reoring/skema"
)

// Object returns a record schema from declared properties, kept in the given
// order. Inputs may carry keys that are not declared.
func Object(props ...skema.Prop) *skema.Object {
	for i, p := range props {
		if p.Key == nil || p.Value == nil {
			panic(fmt.Errorf("dsl: Object property %d: %w", i, skema.ErrNilSchema))
		}
	}
	return &skema.Object{Props: props}
}

// Field declares a property with a literal key.
func Field(name string, v skema.Node) skema.Prop {
	return skema.Prop{Kind: skema.KeyLiteral, Key: Literal(name), Value: v}
}

// PatternField declares a property whose key matches re.
func PatternField(re string, v skema.Node) skema.Prop {
	return skema.Prop{Kind: skema.KeyPattern, Key: Pattern(re), Value: v}
}

// KeyField declares a property whose key is described by another schema,
// typically a named one. Bare literal and pattern strings are folded into
// Field and PatternField.
func KeyField(key, v skema.Node) skema.Prop {
	return skema.Prop{Kind: skema.KeyKindOf(key), Key: key, Value: v}
}

// IsPatternKey reports whether a map-literal key is fenced by slashes.
func IsPatternKey(k string) bool {
	return len(k) >= 2 && strings.HasPrefix(k, "/") && strings.HasSuffix(k, "/")
}

// resolver recovers registered schemas from key tokens.
type resolver interface {
	Resolve(key string) (skema.Node, bool)
}

// keyProp classifies a map-literal key: pattern, then reference, then
// literal.
func keyProp(k string, v skema.Node, r resolver) (skema.Prop, error) {
	switch {
	case IsPatternKey(k):
		s, err := skema.NewPattern(k[1 : len(k)-1])
		if err != nil {
			return skema.Prop{}, err
		}
		return skema.Prop{Kind: skema.KeyPattern, Key: s, Value: v}, nil
	case skema.IsRefKey(k):
		if r == nil {
			return skema.Prop{}, fmt.Errorf("%w: no registry to resolve %q", skema.ErrUnknownReference, k)
		}
		n, ok := r.Resolve(k)
		if !ok {
			return skema.Prop{}, fmt.Errorf("%w: %q", skema.ErrUnknownReference, k)
		}
		return KeyField(n, v), nil
	}
	return Field(k, v), nil
}
