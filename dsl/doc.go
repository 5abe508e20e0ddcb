// Package dsl provides the constructors of skema schemas.
//
// Overview
//   - Primitives: String()/Literal()/Pattern(), Number()/NumberLit()/Interval()/AtLeast()/AtMost(),
//     Boolean(), Null(), Function(returns, params...).
//   - Sequences: Tuple(items...) is positional and fixed-length, List(item) is homogeneous.
//   - Records and maps: Object(Field(...), PatternField(...), KeyField(...)) keeps declaration
//     order and allows extra keys; Dict(key, value) constrains every entry.
//   - Alternatives and labels: Or(alts...), Enum(values...), Role(label, n), Describe(title, desc, n).
//   - Literal shorthand: Lift(v) turns strings, numbers, maps and slices into schemas.
//   - Builder: the two-phase way to define named schemas and use them as map-literal keys.
//
// File layout (roles)
//   - primitives.go: scalar constructors.
//   - array.go: Tuple/List.
//   - object_builder.go: Object/Field/PatternField/KeyField and map-key classification.
//   - map_core.go: Dict.
//   - union.go: Or/Enum.
//   - annotate.go: Role/Describe.
//   - lift.go: literal shorthand.
//   - bind.go: Builder.
//
// Example (quickstart)
//
//	b := dsl.NewBuilder()
//	columnID := b.Named("ColumnID", "UUID for identifying columns",
//	    dsl.Pattern(`[0-9a-z]{8}-[0-9a-z]{4}-[0-9a-z]{4}-[0-9a-z]{12}`))
//	column := b.Named("Column", "A column for display", map[string]any{
//	    "width":    dsl.AtLeast(0),
//	    "dataType": dsl.Enum("mutationVector", "clinicalMatrix"),
//	    "fields":   []any{dsl.String()},
//	})
//	columns := b.Named("Columns", "A set of columns", map[string]any{
//	    b.Key(columnID): column,
//	})
//	reg, err := b.Build()
//
// Map-literal keys
//
//	"/foo[0-9]+/"   pattern key (slash fenced)
//	b.Key(named)    reference to a registered schema
//	"anything"      literal key
//
// A map with exactly one key lifts to a Dict; use Builder.Object to force a
// record.
package dsl
