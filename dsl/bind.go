package dsl

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	skema "github.com/reoring/skema"
)

// Builder constructs a set of named schemas against one Registry. It accepts
// literal shorthand everywhere a schema is expected, and lets named schemas
// appear as map-literal keys through Key.
//
// Definition errors do not stop the build: the offending position gets a
// schema that matches nothing, and Build reports every error at once.
type Builder struct {
	reg  *skema.Registry
	errs *multierror.Error
}

// NewBuilder returns a Builder with a fresh Registry.
func NewBuilder() *Builder { return NewBuilderWith(skema.NewRegistry()) }

// NewBuilderWith returns a Builder that registers into reg.
func NewBuilderWith(reg *skema.Registry) *Builder { return &Builder{reg: reg} }

// Registry returns the registry being populated.
func (b *Builder) Registry() *skema.Registry { return b.reg }

// Named lifts v, gives it a title and description, and registers it.
func (b *Builder) Named(title, description string, v any) skema.Node {
	n := b.Lift(v)
	opts := n.Meta()
	opts.Title = title
	opts.Description = description
	named := skema.WithOptions(n, opts)
	if _, err := b.reg.Register(named); err != nil {
		b.fail(err)
	}
	return named
}

// Key returns the map-key token standing for a registered node:
//
//	b.Object(map[string]any{b.Key(ColumnID): Column})
func (b *Builder) Key(n skema.Node) string {
	key, ok := b.reg.KeyOf(n)
	if !ok {
		b.fail(fmt.Errorf("%w: %s is not registered", skema.ErrUnknownReference, skema.Describe(n)))
		return ""
	}
	return key
}

// Lift is the package-level Lift with reference keys resolved against the
// builder's registry.
func (b *Builder) Lift(v any) skema.Node {
	n, err := lift(v, b.reg)
	if err != nil {
		b.fail(err)
		return never(err)
	}
	return n
}

func (b *Builder) Or(alts ...any) skema.Node {
	return &skema.Or{Alts: b.liftAll(alts)}
}

func (b *Builder) Tuple(items ...any) skema.Node {
	return &skema.Tuple{Items: b.liftAll(items)}
}

func (b *Builder) List(item any) skema.Node {
	return &skema.List{Item: b.Lift(item)}
}

func (b *Builder) Function(returns any, params ...any) skema.Node {
	var ret skema.Node
	if returns != nil {
		ret = b.Lift(returns)
	}
	return &skema.Function{Returns: ret, Params: b.liftAll(params)}
}

func (b *Builder) Role(label string, v any) skema.Node {
	return &skema.Annotation{Options: skema.Options{Role: label}, Inner: b.Lift(v)}
}

// Object builds a record from a map literal regardless of its size.
func (b *Builder) Object(m map[string]any) skema.Node {
	n := b.Lift(m)
	if d, ok := n.(*skema.Dict); ok {
		return &skema.Object{Props: []skema.Prop{KeyField(d.Key, d.Value)}}
	}
	return n
}

// Dict builds a homogeneous map. A string key is classified like a map-literal
// key (pattern, reference, literal).
func (b *Builder) Dict(key, value any) skema.Node {
	val := b.Lift(value)
	if k, ok := key.(string); ok {
		p, err := keyProp(k, val, b.reg)
		if err != nil {
			b.fail(err)
			return never(err)
		}
		return &skema.Dict{Key: p.Key, Value: val}
	}
	return &skema.Dict{Key: b.Lift(key), Value: val}
}

// Err returns the accumulated definition errors, or nil.
func (b *Builder) Err() error { return b.errs.ErrorOrNil() }

// Build finishes the definition phase.
func (b *Builder) Build() (*skema.Registry, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	return b.reg, nil
}

// MustBuild is Build that panics on error.
func (b *Builder) MustBuild() *skema.Registry {
	reg, err := b.Build()
	if err != nil {
		panic(err)
	}
	return reg
}

func (b *Builder) liftAll(vs []any) []skema.Node {
	out := make([]skema.Node, len(vs))
	for i, v := range vs {
		out[i] = b.Lift(v)
	}
	return out
}

func (b *Builder) fail(err error) { b.errs = multierror.Append(b.errs, err) }

// never stands in for a schema that failed to build; it matches nothing.
func never(err error) skema.Node {
	return &skema.Or{Options: skema.Options{Description: err.Error()}}
}
