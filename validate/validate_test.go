package validate_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
	"github.com/reoring/skema/validate"
)

func TestValid_Table(t *testing.T) {
	b := dsl.NewBuilder()
	fooKey := b.Named("FooKey", "foo key", dsl.Pattern(`foo[0-9]+`))
	fooDict := b.Lift(map[string]any{b.Key(fooKey): dsl.Boolean()})
	b.MustBuild()

	ab := dsl.MustLift(map[string]any{"a": dsl.Boolean(), "b": dsl.Number()})

	tests := []struct {
		name string
		s    skema.Node
		v    any
		want bool
	}{
		{"true is boolean", dsl.Boolean(), true, true},
		{"false is boolean", dsl.Boolean(), false, true},
		{"5 is not boolean", dsl.Boolean(), 5, false},
		{"nil is null", dsl.Null(), nil, true},
		{"zero is not null", dsl.Null(), 0, false},
		{"5 is number >= 0", dsl.AtLeast(0), 5, true},
		{"-5 is not number >= 0", dsl.AtLeast(0), -5, false},
		{"json.Number in interval", dsl.Interval(0, 10), json.Number("7.5"), true},
		{"json.Number is not a string", dsl.String(), json.Number("1"), false},
		{"foo is literal foo", dsl.Literal("foo"), "foo", true},
		{"bar is not literal foo", dsl.Literal("foo"), "bar", false},
		{"foo is string", dsl.String(), "foo", true},
		{"pattern matches", dsl.Pattern(`f[o]*b.r`), "foobar", true},
		{"pattern misses", dsl.Pattern(`f[o]*br`), "foobar", false},
		{"tuple of booleans", dsl.Tuple(dsl.Boolean(), dsl.Boolean()), []any{true, true}, true},
		{"tuple wrong element", dsl.Tuple(dsl.Boolean(), dsl.Boolean()), []any{true, 5}, false},
		{"tuple too short", dsl.Tuple(dsl.Boolean(), dsl.Boolean()), []any{true}, false},
		{"list of positives", dsl.List(dsl.AtLeast(0)), []int{5, 2}, true},
		{"list with boolean", dsl.List(dsl.AtLeast(0)), []any{5, true, 2}, false},
		{"empty list", dsl.List(dsl.AtLeast(0)), []any{}, true},
		{"object all present", ab, map[string]any{"a": true, "b": 5}, true},
		{"object missing b", ab, map[string]any{"a": true}, false},
		{"object forced, extra key", dsl.Object(dsl.Field("a", dsl.Boolean())), map[string]any{"a": true, "b": 5}, true},
		{"dict with pattern key", fooDict, map[string]any{"foo1": true, "foo2": false}, true},
		{"dict rejects foreign key", fooDict, map[string]any{"foo1": true, "bar": false}, false},
		{"empty dict", fooDict, map[string]any{}, true},
		{"or second alternative", dsl.Or(dsl.Boolean(), dsl.AtLeast(0)), 5, true},
		{"or no alternative", dsl.Or(dsl.Boolean(), dsl.Literal("foo")), 5, false},
		{"or literal alternative", dsl.Or(dsl.Boolean(), dsl.Literal("foo")), "foo", true},
		{"empty or matches nothing", dsl.Or(), "x", false},
		{"function", dsl.Function(dsl.Boolean(), dsl.AtLeast(0)), func(x int) int { return x + 1 }, true},
		{"5 is not a function", dsl.Function(dsl.Boolean(), dsl.AtLeast(0)), 5, false},
		{"role is transparent", dsl.Role("low", dsl.AtLeast(0)), 1, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := validate.Valid(tc.s, tc.v); got != tc.want {
				t.Fatalf("Valid = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValid_EndToEnd(t *testing.T) {
	s := dsl.MustLift(map[string]any{"a": dsl.Boolean(), "b": dsl.AtLeast(0)})
	if !validate.Valid(s, map[string]any{"a": true, "b": 5}) {
		t.Fatal("valid input rejected")
	}
	if validate.Valid(s, map[string]any{"a": true}) {
		t.Fatal("missing b accepted")
	}
	if validate.Valid(s, map[string]any{"a": true, "b": -1}) {
		t.Fatal("bound violation accepted")
	}
}

func TestValid_Deterministic(t *testing.T) {
	s := dsl.MustLift(map[string]any{"/x[0-9]/": dsl.List(dsl.Or(dsl.Null(), dsl.Literal("y"))), "k": dsl.Number()})
	vals := []any{
		map[string]any{"x1": []any{nil, "y"}, "k": 1},
		map[string]any{"x1": []any{"z"}, "k": 1},
		"nope",
	}
	for _, v := range vals {
		first := validate.Valid(s, v)
		for range 5 {
			if validate.Valid(s, v) != first {
				t.Fatalf("non-deterministic verdict for %v", v)
			}
		}
	}
}

func TestValid_LiteralRoundTrip(t *testing.T) {
	if !validate.Valid(dsl.Literal("c"), "c") || validate.Valid(dsl.Literal("c"), "d") {
		t.Fatal("string literal")
	}
	if !validate.Valid(dsl.NumberLit(3), 3) || validate.Valid(dsl.NumberLit(3), 3.5) {
		t.Fatal("number literal")
	}
	if !validate.Valid(dsl.MustLift(uint8(3)), 3.0) {
		t.Fatal("lifted number literal")
	}
}

func TestValid_Composition(t *testing.T) {
	a, b := dsl.AtLeast(0), dsl.Literal("x")
	vals := []any{1, -1, "x", "y", nil}
	for _, x := range vals {
		for _, y := range vals {
			want := validate.Valid(a, x) && validate.Valid(b, y)
			if got := validate.Valid(dsl.Tuple(a, b), []any{x, y}); got != want {
				t.Fatalf("tuple(%v, %v) = %v, want %v", x, y, got, want)
			}
		}
		want := validate.Valid(a, x) || validate.Valid(b, x)
		if got := validate.Valid(dsl.Or(a, b), x); got != want {
			t.Fatalf("or(%v) = %v, want %v", x, got, want)
		}
		open := validate.Valid(dsl.Object(dsl.Field("k", a)), map[string]any{"k": x, "extra": 1})
		if open != validate.Valid(a, x) {
			t.Fatalf("object openness broken for %v", x)
		}
		closed := validate.Valid(dsl.Dict(dsl.Pattern(`^k`), a), map[string]any{"k1": 1, "k2": x})
		if closed != validate.Valid(a, x) {
			t.Fatalf("dict closedness broken for %v", x)
		}
	}
}

// One input entry may satisfy several declared properties; this is accepted
// and reported as advisory only.
func TestValid_ObjectSharesEntries(t *testing.T) {
	s := dsl.Object(
		dsl.PatternField(`^a`, dsl.Number()),
		dsl.PatternField(`b$`, dsl.Number()),
	)
	v := map[string]any{"ab": 1}
	if !validate.Valid(s, v) {
		t.Fatal("one entry should be allowed to satisfy both properties")
	}
	amb := validate.Ambiguities(s, v)
	if len(amb) != 1 || amb[0].Code != skema.CodeAmbiguous || amb[0].Path != "/ab" {
		t.Fatalf("unexpected ambiguities %+v", amb)
	}
	if got := validate.Ambiguities(s, map[string]any{"a": 1, "b": 2}); len(got) != 0 {
		t.Fatalf("distinct entries are not ambiguous: %+v", got)
	}
}

func TestCheck_Issues(t *testing.T) {
	s := dsl.Object(
		dsl.Field("name", dsl.String()),
		dsl.Field("width", dsl.Interval(1, 100)),
		dsl.Field("tags", dsl.List(dsl.Pattern(`^[a-z]+$`))),
	)
	err := validate.Check(s, map[string]any{
		"width": 0,
		"tags":  []any{"ok", "Bad"},
	})
	iss, ok := skema.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	type row struct{ Path, Code string }
	var got []row
	for _, it := range iss {
		got = append(got, row{it.Path, it.Code})
	}
	want := []row{
		{"/", skema.CodeRequired},
		{"/width", skema.CodeTooSmall},
		{"/tags/1", skema.CodePattern},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if iss[0].Params["key"] != "name" {
		t.Fatalf("required issue should name the key: %+v", iss[0])
	}
	if iss[1].Message != "too small, minimum is 1" {
		t.Fatalf("message = %q", iss[1].Message)
	}
	if validate.Check(s, map[string]any{"name": "n", "width": 3, "tags": []string{"a"}}) != nil {
		t.Fatal("valid value produced issues")
	}
}

func TestCheck_OrReportsOnce(t *testing.T) {
	err := validate.Check(dsl.List(dsl.Or(dsl.Boolean(), dsl.Literal("foo"))), []any{true, 5})
	iss, _ := skema.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != skema.CodeNoMatch || iss[0].Path != "/1" {
		t.Fatalf("speculative alternatives must not report: %+v", iss)
	}
}

func TestCheck_DictKey(t *testing.T) {
	d := dsl.Dict(dsl.Describe("FooKey", "", dsl.Pattern(`^foo`)), dsl.Boolean())
	iss, _ := skema.AsIssues(validate.Check(d, map[string]any{"bar": true, "foo": 1}))
	if len(iss) != 2 {
		t.Fatalf("want 2 issues, got %+v", iss)
	}
	if iss[0].Path != "/bar" || iss[0].Code != skema.CodeInvalidKey || iss[0].Hint != "FooKey" {
		t.Fatalf("bad key issue %+v", iss[0])
	}
	if iss[1].Path != "/foo" || iss[1].Code != skema.CodeInvalidType {
		t.Fatalf("bad value issue %+v", iss[1])
	}
}

func TestWithAssert_CustomStrategy(t *testing.T) {
	errStop := errors.New("stop")
	var sites []string
	v := validate.New(validate.WithAssert(func(ok bool, at validate.Site) bool {
		if !ok {
			sites = append(sites, at.Path.Pointer()+" "+at.Code)
		}
		return ok
	}))
	if v.Valid(dsl.Tuple(dsl.Boolean(), dsl.Null()), []any{1, 2}) {
		t.Fatal("expected failure")
	}
	if diff := cmp.Diff([]string{"/0 invalid_type", "/1 invalid_type"}, sites); diff != "" {
		t.Fatalf("sites (-want +got):\n%s", diff)
	}

	defer func() {
		if r := recover(); r != errStop {
			t.Fatalf("expected the hook's panic, got %v", r)
		}
	}()
	validate.New(validate.WithAssert(func(ok bool, _ validate.Site) bool {
		if !ok {
			panic(errStop)
		}
		return ok
	})).Valid(dsl.Boolean(), "x")
}

func TestMust_Panics(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if _, ok := skema.AsIssues(err); !ok {
			t.Fatalf("Must should panic with Issues, got %v", err)
		}
	}()
	validate.Must(dsl.Null(), 1)
}

type column struct {
	ID    string  `json:"id"`
	Width float64 `json:"width"`
	Skip  string  `json:"-"`
}

func TestValid_StructAsObject(t *testing.T) {
	s := dsl.Object(dsl.Field("id", dsl.Pattern(`^c`)), dsl.Field("width", dsl.AtLeast(0)))
	if !validate.Valid(s, column{ID: "c1", Width: 2}) {
		t.Fatal("struct should be viewed through json tags")
	}
	if !validate.Valid(s, &column{ID: "c2"}) {
		t.Fatal("pointer to struct")
	}
	if validate.Valid(s, column{ID: "x", Width: 2}) {
		t.Fatal("pattern on struct field not enforced")
	}
	if validate.Valid(dsl.Object(dsl.Field("Skip", dsl.String())), column{}) {
		t.Fatal("json:\"-\" fields must be hidden")
	}
}
