package validate

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"
)

// entry is one key/value pair of a map-like input.
type entry struct {
	key  any
	name string // key as rendered in paths
	val  any
}

func asString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return "", false
	case nil:
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case nil:
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func asBool(v any) bool {
	if v == nil {
		return false
	}
	return reflect.ValueOf(v).Kind() == reflect.Bool
}

func isFunc(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

func asSeq(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	}
	return nil, false
}

// asMap returns the entries of a map-like input sorted by key name. Structs
// (and pointers to structs) are viewed through their json tags.
func asMap(v any) ([]entry, bool) {
	if v == nil {
		return nil, false
	}
	if m, ok := v.(map[string]any); ok {
		return sortEntries(stringEntries(m)), true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		out := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().Interface()
			out = append(out, entry{key: k, name: fmt.Sprint(k), val: iter.Value().Interface()})
		}
		return sortEntries(out), true
	case reflect.Struct:
		m, err := structToMap(rv.Interface())
		if err != nil {
			return nil, false
		}
		return sortEntries(stringEntries(m)), true
	}
	return nil, false
}

func structToMap(v any) (map[string]any, error) {
	out := map[string]any{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &out,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(v); err != nil {
		return nil, err
	}
	delete(out, "-")
	return out, nil
}

func stringEntries(m map[string]any) []entry {
	out := make([]entry, 0, len(m))
	for k, v := range m {
		out = append(out, entry{key: k, name: k, val: v})
	}
	return out
}

func sortEntries(es []entry) []entry {
	sort.Slice(es, func(i, j int) bool { return es[i].name < es[j].name })
	return es
}
