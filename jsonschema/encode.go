package jsonschema

import (
	stdjson "encoding/json"
	"strconv"

	json "github.com/goccy/go-json"
	js "github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// JSON renders the wire schema as indented JSON.
func (s *Schema) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// YAML renders the wire schema as block-style YAML with the same key order
// as JSON.
func (s *Schema) YAML() ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	blockStyle(&doc)
	return yaml.Marshal(&doc)
}

func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// Draft2020 converts the wire schema to a JSON Schema 2020-12 document.
// Tuples become prefixItems closed with items:false and the function
// extension is carried in Extras.
func (s *Schema) Draft2020() *js.Schema {
	out := s.draft()
	out.Version = js.Version
	return out
}

func (s *Schema) draft() *js.Schema {
	out := &js.Schema{
		Title:       s.Title,
		Description: s.Description,
		Type:        s.Type,
		Pattern:     s.Pattern,
	}
	if s.Minimum != nil {
		out.Minimum = number(*s.Minimum)
	}
	if s.Maximum != nil {
		out.Maximum = number(*s.Maximum)
	}
	if s.Items != nil {
		if s.Items.IsTuple() {
			n := uint64(len(s.Items.Tuple))
			out.PrefixItems = drafts(s.Items.Tuple)
			out.Items = js.FalseSchema
			out.MinItems = &n
		} else {
			out.Items = s.Items.Schema.draft()
		}
	}
	if s.Properties != nil {
		out.Properties = js.NewProperties()
		for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
			out.Properties.Set(pair.Key, pair.Value.draft())
		}
	}
	if s.PatternProperties != nil {
		out.PatternProperties = make(map[string]*js.Schema, s.PatternProperties.Len())
		for pair := s.PatternProperties.Oldest(); pair != nil; pair = pair.Next() {
			out.PatternProperties[pair.Key] = pair.Value.draft()
		}
	}
	if s.PropertyNames != nil {
		out.PropertyNames = s.PropertyNames.draft()
	}
	if s.AdditionalProperties != nil {
		out.AdditionalProperties = s.AdditionalProperties.draft()
	}
	if len(s.AnyOf) > 0 {
		out.AnyOf = drafts(s.AnyOf)
	}
	if s.Function != nil {
		out.Extras = map[string]any{"x-function": s.Function}
	}
	return out
}

func drafts(ss []*Schema) []*js.Schema {
	out := make([]*js.Schema, len(ss))
	for i, s := range ss {
		out[i] = s.draft()
	}
	return out
}

func number(f float64) stdjson.Number {
	return stdjson.Number(strconv.FormatFloat(f, 'g', -1, 64))
}
