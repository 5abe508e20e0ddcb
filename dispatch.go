package skema

import "fmt"

// Visitor is the handler table of one interpreter: one method per tag.
// Adding a tag adds a method, so an interpreter that forgets a tag does not
// compile.
type Visitor[R any] interface {
	String(n *String) R
	Number(n *Number) R
	Boolean(n *Boolean) R
	Null(n *Null) R
	Function(n *Function) R
	Tuple(n *Tuple) R
	List(n *List) R
	Object(n *Object) R
	Dict(n *Dict) R
	Or(n *Or) R
	Annotation(n *Annotation) R
}

// Dispatch invokes the handler registered in v for n's tag. Interpreters bind
// their per-call context (the value under test, the output path, ...) into v
// before dispatching. A nil node panics with ErrUnhandledTag.
func Dispatch[R any](n Node, v Visitor[R]) R {
	switch t := n.(type) {
	case *String:
		return v.String(t)
	case *Number:
		return v.Number(t)
	case *Boolean:
		return v.Boolean(t)
	case *Null:
		return v.Null(t)
	case *Function:
		return v.Function(t)
	case *Tuple:
		return v.Tuple(t)
	case *List:
		return v.List(t)
	case *Object:
		return v.Object(t)
	case *Dict:
		return v.Dict(t)
	case *Or:
		return v.Or(t)
	case *Annotation:
		return v.Annotation(t)
	}
	panic(fmt.Errorf("%w: %T", ErrUnhandledTag, n))
}

// Children returns the direct sub-schemas of n in documentation order.
// Object and Dict keys come before their values.
func Children(n Node) []Node {
	switch t := n.(type) {
	case *Function:
		out := append([]Node{}, t.Params...)
		if t.Returns != nil {
			out = append(out, t.Returns)
		}
		return out
	case *Tuple:
		return t.Items
	case *List:
		return []Node{t.Item}
	case *Object:
		out := make([]Node, 0, 2*len(t.Props))
		for _, p := range t.Props {
			out = append(out, p.Key, p.Value)
		}
		return out
	case *Dict:
		return []Node{t.Key, t.Value}
	case *Or:
		return t.Alts
	case *Annotation:
		return []Node{t.Inner}
	}
	return nil
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of the current node. A node shared by several parents
// is visited once per path.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}
