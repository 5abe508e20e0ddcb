// Package jsonschema projects skema schemas onto a JSON-Schema-like wire
// form for interchange with external tooling.
package jsonschema

import (
	json "github.com/goccy/go-json"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Properties keeps declared properties in declaration order.
type Properties = orderedmap.OrderedMap[string, *Schema]

// Schema is the wire representation. Fields are emitted in declaration order
// and absent fields are omitted, never written as null.
type Schema struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	Type    string   `json:"type,omitempty"`
	Pattern string   `json:"pattern,omitempty"`
	Minimum *float64 `json:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty"`

	// Array
	Items *Items `json:"items,omitempty"`

	// Object
	Properties           *Properties `json:"properties,omitempty"`
	PatternProperties    *Properties `json:"patternProperties,omitempty"`
	PropertyNames        *Schema     `json:"propertyNames,omitempty"`
	AdditionalProperties *Schema     `json:"additionalProperties,omitempty"`

	// Union
	AnyOf []*Schema `json:"anyOf,omitempty"`

	Function *Function `json:"x-function,omitempty"`
}

// Items is either one schema for every element or a positional list.
type Items struct {
	Schema *Schema
	Tuple  []*Schema
}

// IsTuple reports whether the items are positional.
func (it *Items) IsTuple() bool { return it.Schema == nil }

func (it *Items) MarshalJSON() ([]byte, error) {
	if it.Schema != nil {
		return json.Marshal(it.Schema)
	}
	if it.Tuple == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(it.Tuple)
}

// Function documents a callable: JSON Schema has no type for it.
type Function struct {
	Params  []*Schema `json:"params"`
	Returns *Schema   `json:"returns,omitempty"`
}

func newProperties() *Properties { return orderedmap.New[string, *Schema]() }

// put adds s under key. A key declared twice keeps both schemas as
// alternatives.
func put(m *Properties, key string, s *Schema) {
	if old, ok := m.Get(key); ok {
		m.Set(key, &Schema{AnyOf: []*Schema{old, s}})
		return
	}
	m.Set(key, s)
}

// merge fills title and description from the node options without
// overwriting what the projection already set.
func (s *Schema) merge(title, description string) *Schema {
	if s.Title == "" {
		s.Title = title
	}
	if s.Description == "" {
		s.Description = description
	}
	return s
}
