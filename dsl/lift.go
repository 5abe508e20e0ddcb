package dsl

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	skema "github.com/reoring/skema"
)

// Lift converts literal shorthand into a schema:
//
//   - a skema.Node is returned unchanged
//   - a string becomes a string literal
//   - any number (including json.Number) becomes a number literal
//   - a string-keyed map with exactly one entry becomes a Dict, any other
//     string-keyed map becomes an Object (keys sorted)
//   - a one-element slice becomes a List, any other slice a Tuple
//
// Map keys are classified as pattern ("/re/"), then registry reference, then
// literal. Lift has no registry, so reference keys fail; use Builder.Lift for
// them. Any other value fails with skema.ErrUnrecognizedLiteral.
func Lift(v any) (skema.Node, error) { return lift(v, nil) }

// MustLift is Lift that panics on error.
func MustLift(v any) skema.Node {
	n, err := Lift(v)
	if err != nil {
		panic(err)
	}
	return n
}

func lift(v any, r resolver) (skema.Node, error) {
	switch t := v.(type) {
	case skema.Node:
		return t, nil
	case string:
		return Literal(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", skema.ErrUnrecognizedLiteral, err)
		}
		return NumberLit(f), nil
	case nil:
		return nil, fmt.Errorf("%w: nil", skema.ErrUnrecognizedLiteral)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return Literal(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return NumberLit(float64(rv.Int())), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return NumberLit(float64(rv.Uint())), nil
	case reflect.Float32, reflect.Float64:
		return NumberLit(rv.Float()), nil
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return liftMap(rv, r)
		}
	case reflect.Slice, reflect.Array:
		return liftSlice(rv, r)
	}
	return nil, fmt.Errorf("%w: %T", skema.ErrUnrecognizedLiteral, v)
}

func liftMap(rv reflect.Value, r resolver) (skema.Node, error) {
	keys := make([]string, 0, rv.Len())
	for _, k := range rv.MapKeys() {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)

	props := make([]skema.Prop, 0, len(keys))
	for _, k := range keys {
		val, err := lift(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface(), r)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		p, err := keyProp(k, val, r)
		if err != nil {
			return nil, err
		}
		props = append(props, p)
	}
	if len(props) == 1 {
		return &skema.Dict{Key: props[0].Key, Value: props[0].Value}, nil
	}
	return &skema.Object{Props: props}, nil
}

func liftSlice(rv reflect.Value, r resolver) (skema.Node, error) {
	items := make([]skema.Node, rv.Len())
	for i := range items {
		n, err := lift(rv.Index(i).Interface(), r)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		items[i] = n
	}
	if len(items) == 1 {
		return &skema.List{Item: items[0]}, nil
	}
	return &skema.Tuple{Items: items}, nil
}
