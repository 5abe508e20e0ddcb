package skema_test

import (
	"errors"
	"testing"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
)

// tagOf is a Visitor that reports which handler ran.
type tagOf struct{}

func (tagOf) String(*skema.String) skema.Tag         { return skema.TagString }
func (tagOf) Number(*skema.Number) skema.Tag         { return skema.TagNumber }
func (tagOf) Boolean(*skema.Boolean) skema.Tag       { return skema.TagBoolean }
func (tagOf) Null(*skema.Null) skema.Tag             { return skema.TagNull }
func (tagOf) Function(*skema.Function) skema.Tag     { return skema.TagFunction }
func (tagOf) Tuple(*skema.Tuple) skema.Tag           { return skema.TagTuple }
func (tagOf) List(*skema.List) skema.Tag             { return skema.TagList }
func (tagOf) Object(*skema.Object) skema.Tag         { return skema.TagObject }
func (tagOf) Dict(*skema.Dict) skema.Tag             { return skema.TagDict }
func (tagOf) Or(*skema.Or) skema.Tag                 { return skema.TagOr }
func (tagOf) Annotation(*skema.Annotation) skema.Tag { return skema.TagAnnotation }

func allNodes() []skema.Node {
	return []skema.Node{
		dsl.String(), dsl.Number(), dsl.Boolean(), dsl.Null(),
		dsl.Function(nil), dsl.Tuple(), dsl.List(dsl.String()),
		dsl.Object(), dsl.Dict(dsl.String(), dsl.Number()),
		dsl.Or(), dsl.Role("r", dsl.Null()),
	}
}

func TestDispatch_EveryTag(t *testing.T) {
	nodes := allNodes()
	if len(nodes) != len(skema.Tags()) {
		t.Fatalf("fixture covers %d of %d tags", len(nodes), len(skema.Tags()))
	}
	for i, n := range nodes {
		if got := skema.Dispatch[skema.Tag](n, tagOf{}); got != n.Tag() || got != skema.Tags()[i] {
			t.Fatalf("node %d dispatched to %v, tag %v", i, got, n.Tag())
		}
	}
}

func TestDispatch_NilPanics(t *testing.T) {
	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, skema.ErrUnhandledTag) {
			t.Fatalf("expected ErrUnhandledTag panic, got %v", err)
		}
	}()
	skema.Dispatch[skema.Tag](nil, tagOf{})
}

func TestTag_Text(t *testing.T) {
	b, err := skema.TagDict.MarshalText()
	if err != nil || string(b) != "Dict" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}
	if _, err := skema.Tag(99).MarshalText(); !errors.Is(err, skema.ErrUnhandledTag) {
		t.Fatalf("unknown tag should not marshal, got %v", err)
	}
}

func TestWithOptions_PreservesPayloadAndIdentityOfChildren(t *testing.T) {
	item := dsl.Literal("x")
	l := dsl.List(item)
	named := skema.WithOptions(l, skema.Options{Title: "Xs"})
	nl, ok := named.(*skema.List)
	if !ok || nl == l {
		t.Fatalf("expected a new *List, got %T", named)
	}
	if nl.Item != skema.Node(item) {
		t.Fatalf("children must be shared")
	}
	if l.Meta().Title != "" || nl.Meta().Title != "Xs" {
		t.Fatalf("options not applied to the copy only")
	}
}

func TestString_Match(t *testing.T) {
	p := dsl.Pattern(`f[o]*b.r`)
	if !p.Match("xxfoobarxx") {
		t.Fatalf("pattern should search anywhere in the value")
	}
	if p.Match("foobr") {
		t.Fatalf("pattern should not match")
	}
	raw := &skema.String{Pattern: `^a+$`}
	if !raw.Match("aaa") || raw.Match("ab") {
		t.Fatalf("uncompiled pattern should compile on demand")
	}
}

func TestNumber_Contains(t *testing.T) {
	n := dsl.AtLeast(0)
	if !n.Contains(0) || !n.Contains(1e9) || n.Contains(-1) {
		t.Fatalf("lower bound not inclusive or upper bound not infinite")
	}
	if !dsl.NumberLit(5).Contains(5) || dsl.NumberLit(5).Contains(6) {
		t.Fatalf("literal comparison failed")
	}
}

func TestWalk_VisitsSharedNodePerPath(t *testing.T) {
	shared := dsl.Describe("T", "", dsl.String())
	root := dsl.Tuple(shared, dsl.List(shared))
	count := 0
	skema.Walk(root, func(n skema.Node) bool {
		if n == shared {
			count++
		}
		return true
	})
	if count != 2 {
		t.Fatalf("shared node visited %d times, want 2", count)
	}
}

func TestUnwrap(t *testing.T) {
	inner := dsl.Number()
	if skema.Unwrap(dsl.Role("a", dsl.Role("b", inner))) != skema.Node(inner) {
		t.Fatalf("Unwrap should strip nested annotations")
	}
}
