package skema

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// Tag identifies the kind of a schema node. The set is closed.
type Tag int

const (
	TagString Tag = iota
	TagNumber
	TagBoolean
	TagNull
	TagFunction
	TagTuple
	TagList
	TagObject
	TagDict
	TagOr
	TagAnnotation
)

var tagNames = map[Tag]string{
	TagString:     "String",
	TagNumber:     "Number",
	TagBoolean:    "Boolean",
	TagNull:       "Null",
	TagFunction:   "Function",
	TagTuple:      "Tuple",
	TagList:       "List",
	TagObject:     "Object",
	TagDict:       "Dict",
	TagOr:         "Or",
	TagAnnotation: "Annotation",
}

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return "<unknown tag>"
}

func (t Tag) MarshalText() ([]byte, error) {
	if _, ok := tagNames[t]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnhandledTag, int(t))
	}
	return []byte(t.String()), nil
}

// Tags lists every tag in declaration order.
func Tags() []Tag {
	return []Tag{
		TagString, TagNumber, TagBoolean, TagNull, TagFunction,
		TagTuple, TagList, TagObject, TagDict, TagOr, TagAnnotation,
	}
}

// Options carries the metadata shared by every node. An empty field is absent.
// A Title makes the node addressable as a documentation anchor and usable as a
// cross-reference target.
type Options struct {
	Title       string
	Description string
	Role        string
}

// Meta returns the options; node types embed Options and inherit it.
func (o Options) Meta() Options { return o }

// Named reports whether the options carry a title.
func (o Options) Named() bool { return o.Title != "" }

// Node is one immutable element of a schema tree. It is implemented only by
// the node types of this package; values must not be modified after they are
// handed to an interpreter.
type Node interface {
	Tag() Tag
	Meta() Options
	node()
}

// String matches string values. Literal and Pattern are mutually exclusive;
// with neither set any string matches.
type String struct {
	Options
	Literal *string
	Pattern string

	re *regexp2.Regexp
}

// Number matches numeric values. Literal and the Min/Max interval are mutually
// exclusive; a nil bound is infinite.
type Number struct {
	Options
	Literal *float64
	Min     *float64
	Max     *float64
}

type Boolean struct{ Options }

type Null struct{ Options }

// Function matches callables. Params and Returns describe the shape only.
// A nil Returns places no constraint on the result.
type Function struct {
	Options
	Params  []Node
	Returns Node
}

// Tuple matches fixed-length sequences positionally.
type Tuple struct {
	Options
	Items []Node
}

// List matches sequences of any length whose elements all match Item.
type List struct {
	Options
	Item Node
}

// KeyKind classifies the key of a declared object property.
type KeyKind int

const (
	KeyLiteral KeyKind = iota
	KeyPattern
	KeyRef
)

func (k KeyKind) String() string {
	switch k {
	case KeyLiteral:
		return "literal"
	case KeyPattern:
		return "pattern"
	case KeyRef:
		return "ref"
	}
	return "<unknown key kind>"
}

// KeyKindOf classifies a key schema. An unnamed literal or pattern string is
// matched directly; anything else is a reference.
func KeyKindOf(key Node) KeyKind {
	if s, ok := key.(*String); ok && !s.Meta().Named() {
		switch {
		case s.IsLiteral():
			return KeyLiteral
		case s.Pattern != "":
			return KeyPattern
		}
	}
	return KeyRef
}

// Prop is one declared (key, value) pair of an Object. For KeyLiteral and
// KeyPattern the key is a *String; for KeyRef it is the referenced node.
type Prop struct {
	Kind  KeyKind
	Key   Node
	Value Node
}

// Name is the text a property key is known by: the literal, the pattern
// source, or the title of the referenced schema.
func (p Prop) Name() string {
	switch p.Kind {
	case KeyLiteral:
		if s, ok := p.Key.(*String); ok && s.IsLiteral() {
			return *s.Literal
		}
	case KeyPattern:
		if s, ok := p.Key.(*String); ok {
			return s.Pattern
		}
	}
	if p.Key == nil {
		return ""
	}
	return p.Key.Meta().Title
}

// Object is a record: every declared pair must be matched by some entry of
// the input; extra entries are allowed.
type Object struct {
	Options
	Props []Prop
}

// Dict is a homogeneous map: every entry of the input must match Key and Value.
type Dict struct {
	Options
	Key   Node
	Value Node
}

// Or matches when any alternative matches. Alts order only affects
// documentation.
type Or struct {
	Options
	Alts []Node
}

// Annotation labels Inner with Options.Role. It is transparent to
// validation and wire projection.
type Annotation struct {
	Options
	Inner Node
}

func (*String) Tag() Tag     { return TagString }
func (*Number) Tag() Tag     { return TagNumber }
func (*Boolean) Tag() Tag    { return TagBoolean }
func (*Null) Tag() Tag       { return TagNull }
func (*Function) Tag() Tag   { return TagFunction }
func (*Tuple) Tag() Tag      { return TagTuple }
func (*List) Tag() Tag       { return TagList }
func (*Object) Tag() Tag     { return TagObject }
func (*Dict) Tag() Tag       { return TagDict }
func (*Or) Tag() Tag         { return TagOr }
func (*Annotation) Tag() Tag { return TagAnnotation }

func (*String) node()     {}
func (*Number) node()     {}
func (*Boolean) node()    {}
func (*Null) node()       {}
func (*Function) node()   {}
func (*Tuple) node()      {}
func (*List) node()       {}
func (*Object) node()     {}
func (*Dict) node()       {}
func (*Or) node()         {}
func (*Annotation) node() {}

// PatternTimeout bounds a single pattern match.
const PatternTimeout = time.Second

// NewPattern returns a String node constrained by an ECMAScript regular
// expression. The pattern searches anywhere in the value unless anchored.
func NewPattern(pattern string) (*String, error) {
	re, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	return &String{Pattern: pattern, re: re}, nil
}

func compilePattern(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadPattern, pattern, err)
	}
	re.MatchTimeout = PatternTimeout
	return re, nil
}

// IsLiteral reports whether s matches exactly one string.
func (s *String) IsLiteral() bool { return s.Literal != nil }

// Match reports whether v satisfies the node's literal or pattern.
func (s *String) Match(v string) bool {
	switch {
	case s.IsLiteral():
		return v == *s.Literal
	case s.Pattern != "":
		re := s.re
		if re == nil {
			var err error
			if re, err = compilePattern(s.Pattern); err != nil {
				return false
			}
		}
		ok, err := re.MatchString(v)
		return err == nil && ok
	}
	return true
}

// Contains reports whether f lies within the node's literal or interval.
func (n *Number) Contains(f float64) bool {
	if n.Literal != nil {
		return f == *n.Literal
	}
	if n.Min != nil && f < *n.Min {
		return false
	}
	if n.Max != nil && f > *n.Max {
		return false
	}
	return true
}

// IsInterval reports whether the node carries at least one bound.
func (n *Number) IsInterval() bool { return n.Literal == nil && (n.Min != nil || n.Max != nil) }

// Unwrap strips any Annotation layers from n.
func Unwrap(n Node) Node {
	for {
		a, ok := n.(*Annotation)
		if !ok {
			return n
		}
		n = a.Inner
	}
}

// WithOptions returns a shallow copy of n carrying opts. Children are shared,
// so a named node keeps its identity wherever it is reused.
func WithOptions(n Node, opts Options) Node {
	return Dispatch[Node](n, retitle{opts})
}

type retitle struct{ opts Options }

func (r retitle) String(n *String) Node         { c := *n; c.Options = r.opts; return &c }
func (r retitle) Number(n *Number) Node         { c := *n; c.Options = r.opts; return &c }
func (r retitle) Boolean(n *Boolean) Node       { c := *n; c.Options = r.opts; return &c }
func (r retitle) Null(n *Null) Node             { c := *n; c.Options = r.opts; return &c }
func (r retitle) Function(n *Function) Node     { c := *n; c.Options = r.opts; return &c }
func (r retitle) Tuple(n *Tuple) Node           { c := *n; c.Options = r.opts; return &c }
func (r retitle) List(n *List) Node             { c := *n; c.Options = r.opts; return &c }
func (r retitle) Object(n *Object) Node         { c := *n; c.Options = r.opts; return &c }
func (r retitle) Dict(n *Dict) Node             { c := *n; c.Options = r.opts; return &c }
func (r retitle) Or(n *Or) Node                 { c := *n; c.Options = r.opts; return &c }
func (r retitle) Annotation(n *Annotation) Node { c := *n; c.Options = r.opts; return &c }
