package jsonschema

import (
	"fmt"
	"strings"

	skema "github.com/reoring/skema"
)

// anyKey is the pattern used for object keys the wire form cannot describe
// more precisely.
const anyKey = ".*"

// Project converts a schema to its wire form. The result shares nothing with
// n and may be modified freely.
func Project(n skema.Node) (*Schema, error) {
	p := &projector{}
	s := p.run(n)
	if p.err != nil {
		return nil, p.err
	}
	return s, nil
}

// MustProject is Project that panics on error.
func MustProject(n skema.Node) *Schema {
	s, err := Project(n)
	if err != nil {
		panic(err)
	}
	return s
}

type projector struct {
	err error
}

func (p *projector) run(n skema.Node) *Schema {
	if n == nil {
		if p.err == nil {
			p.err = fmt.Errorf("jsonschema: %w", skema.ErrNilSchema)
		}
		return &Schema{}
	}
	opts := n.Meta()
	return skema.Dispatch[*Schema](n, p).merge(opts.Title, opts.Description)
}

func (p *projector) all(ns []skema.Node) []*Schema {
	out := make([]*Schema, len(ns))
	for i, n := range ns {
		out[i] = p.run(n)
	}
	return out
}

func (p *projector) String(n *skema.String) *Schema {
	switch {
	case n.IsLiteral():
		return &Schema{Type: "string", Pattern: literalPattern(*n.Literal)}
	case n.Pattern != "":
		return &Schema{Type: "string", Pattern: n.Pattern}
	}
	return &Schema{Type: "string"}
}

func (p *projector) Number(n *skema.Number) *Schema {
	if n.Literal != nil {
		v := *n.Literal
		return &Schema{Type: "number", Minimum: &v, Maximum: &v}
	}
	s := &Schema{Type: "number"}
	if n.Min != nil {
		v := *n.Min
		s.Minimum = &v
	}
	if n.Max != nil {
		v := *n.Max
		s.Maximum = &v
	}
	return s
}

func (p *projector) Boolean(*skema.Boolean) *Schema { return &Schema{Type: "boolean"} }

func (p *projector) Null(*skema.Null) *Schema { return &Schema{Type: "null"} }

func (p *projector) Function(n *skema.Function) *Schema {
	f := &Function{Params: p.all(n.Params)}
	if n.Returns != nil {
		f.Returns = p.run(n.Returns)
	}
	return &Schema{Function: f}
}

func (p *projector) Tuple(n *skema.Tuple) *Schema {
	return &Schema{Type: "array", Items: &Items{Tuple: p.all(n.Items)}}
}

func (p *projector) List(n *skema.List) *Schema {
	return &Schema{Type: "array", Items: &Items{Schema: p.run(n.Item)}}
}

func (p *projector) Object(n *skema.Object) *Schema {
	s := &Schema{Type: "object"}
	for _, prop := range n.Props {
		val := p.run(prop.Value)
		for _, k := range wireKeys(prop.Key) {
			if k.literal {
				if s.Properties == nil {
					s.Properties = newProperties()
				}
				put(s.Properties, k.text, val)
				continue
			}
			if s.PatternProperties == nil {
				s.PatternProperties = newProperties()
			}
			put(s.PatternProperties, k.text, val)
		}
	}
	return s
}

func (p *projector) Dict(n *skema.Dict) *Schema {
	s := &Schema{Type: "object", AdditionalProperties: p.run(n.Value)}
	if !unconstrainedString(n.Key) {
		s.PropertyNames = p.run(n.Key)
	}
	return s
}

func (p *projector) Or(n *skema.Or) *Schema {
	return &Schema{AnyOf: p.all(n.Alts)}
}

// Annotation projects the wrapped schema; the role has no wire form.
func (p *projector) Annotation(n *skema.Annotation) *Schema {
	return p.run(n.Inner)
}

type wireKey struct {
	text    string
	literal bool
}

// wireKeys maps a property key to the wire keys it covers. Reference keys
// are resolved through the key schema.
func wireKeys(key skema.Node) []wireKey {
	switch k := skema.Unwrap(key).(type) {
	case *skema.String:
		switch {
		case k.IsLiteral():
			return []wireKey{{text: *k.Literal, literal: true}}
		case k.Pattern != "":
			return []wireKey{{text: k.Pattern}}
		}
	case *skema.Or:
		var out []wireKey
		for _, alt := range k.Alts {
			out = append(out, wireKeys(alt)...)
		}
		return out
	}
	return []wireKey{{text: anyKey}}
}

func unconstrainedString(n skema.Node) bool {
	s, ok := n.(*skema.String)
	return ok && !s.IsLiteral() && s.Pattern == "" && !s.Meta().Named() && s.Meta().Description == ""
}

// syntaxChars are the characters an ECMAScript pattern must escape to match
// them literally. Escaping anything else is an error under the u flag.
const syntaxChars = `^$\.*+?()[]{}|/`

// literalPattern anchors an escaped literal so that it matches exactly
// itself.
func literalPattern(lit string) string {
	var b strings.Builder
	b.Grow(len(lit) + 2)
	b.WriteByte('^')
	for _, r := range lit {
		if strings.ContainsRune(syntaxChars, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('$')
	return b.String()
}
