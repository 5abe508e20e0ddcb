package dsl_test

import (
	"encoding/json"
	"errors"
	"testing"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
)

type label string

func TestLift_Scalars(t *testing.T) {
	cases := []struct {
		in  any
		tag skema.Tag
	}{
		{"foo", skema.TagString},
		{label("bar"), skema.TagString},
		{5, skema.TagNumber},
		{uint8(3), skema.TagNumber},
		{2.5, skema.TagNumber},
		{json.Number("7"), skema.TagNumber},
		{dsl.Boolean(), skema.TagBoolean},
	}
	for _, c := range cases {
		n, err := dsl.Lift(c.in)
		if err != nil {
			t.Fatalf("Lift(%v): %v", c.in, err)
		}
		if n.Tag() != c.tag {
			t.Fatalf("Lift(%v) tag = %v, want %v", c.in, n.Tag(), c.tag)
		}
	}
}

func TestLift_Unrecognized(t *testing.T) {
	for _, in := range []any{nil, true, struct{}{}, map[int]any{1: "x"}} {
		if _, err := dsl.Lift(in); !errors.Is(err, skema.ErrUnrecognizedLiteral) {
			t.Fatalf("Lift(%#v) err = %v, want ErrUnrecognizedLiteral", in, err)
		}
	}
}

func TestLift_MapShapes(t *testing.T) {
	one, err := dsl.Lift(map[string]any{"/fo*/": dsl.NumberLit(5)})
	if err != nil {
		t.Fatal(err)
	}
	d, ok := one.(*skema.Dict)
	if !ok {
		t.Fatalf("single-key map should lift to Dict, got %T", one)
	}
	if k := d.Key.(*skema.String); k.Pattern != "fo*" {
		t.Fatalf("pattern key not recognized: %+v", k)
	}

	many, err := dsl.Lift(map[string]any{"b": dsl.Number(), "a": "x"})
	if err != nil {
		t.Fatal(err)
	}
	o, ok := many.(*skema.Object)
	if !ok {
		t.Fatalf("multi-key map should lift to Object, got %T", many)
	}
	if o.Props[0].Name() != "a" || o.Props[1].Name() != "b" {
		t.Fatalf("keys should be sorted, got %q %q", o.Props[0].Name(), o.Props[1].Name())
	}
	if o.Props[0].Value.Tag() != skema.TagString {
		t.Fatalf("nested literal should be lifted, got %v", o.Props[0].Value.Tag())
	}
}

func TestLift_Slices(t *testing.T) {
	l, err := dsl.Lift([]any{dsl.String()})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := l.(*skema.List); !ok {
		t.Fatalf("one-element slice should lift to List, got %T", l)
	}
	tu, err := dsl.Lift([]any{"float", dsl.Number(), dsl.Number()})
	if err != nil {
		t.Fatal(err)
	}
	if tt, ok := tu.(*skema.Tuple); !ok || len(tt.Items) != 3 {
		t.Fatalf("slice should lift to a 3-tuple, got %#v", tu)
	}
}

func TestLift_RefKeyNeedsRegistry(t *testing.T) {
	b := dsl.NewBuilder()
	k := b.Named("K", "", dsl.String())
	if _, err := dsl.Lift(map[string]any{b.Key(k): dsl.Number()}); !errors.Is(err, skema.ErrUnknownReference) {
		t.Fatalf("expected ErrUnknownReference, got %v", err)
	}
}
