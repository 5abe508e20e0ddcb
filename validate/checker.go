package validate

import (
	skema "github.com/reoring/skema"
)

// checker is the Validator's handler table with the value under test bound
// in. quiet marks speculative checks (Or alternatives, candidate pairs of an
// object search) whose failures are not asserted.
type checker struct {
	v     *Validator
	val   any
	path  skema.PathRef
	quiet bool
}

func (c checker) run(s skema.Node) bool { return skema.Dispatch[bool](s, c) }

func (c checker) at(s skema.Node, val any, path skema.PathRef) bool {
	return checker{v: c.v, val: val, path: path, quiet: c.quiet}.run(s)
}

func (c checker) try(s skema.Node, val any) bool {
	return checker{v: c.v, val: val, path: c.path, quiet: true}.run(s)
}

func (c checker) assert(ok bool, n skema.Node, code string, kv ...any) bool {
	if c.quiet || c.v.assert == nil {
		return ok
	}
	var params map[string]any
	if len(kv) > 1 {
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			params[kv[i].(string)] = kv[i+1]
		}
	}
	return c.v.assert(ok, Site{Path: c.path, Node: n, Code: code, Params: params})
}

func (c checker) String(n *skema.String) bool {
	s, ok := asString(c.val)
	if !ok {
		return c.assert(false, n, skema.CodeInvalidType, "expected", "string")
	}
	switch {
	case n.IsLiteral():
		return c.assert(n.Match(s), n, skema.CodeInvalidValue, "expected", `"`+*n.Literal+`"`)
	case n.Pattern != "":
		return c.assert(n.Match(s), n, skema.CodePattern, "pattern", n.Pattern)
	}
	return c.assert(true, n, skema.CodeInvalidType)
}

func (c checker) Number(n *skema.Number) bool {
	f, ok := asNumber(c.val)
	if !ok {
		return c.assert(false, n, skema.CodeInvalidType, "expected", "number")
	}
	switch {
	case n.Literal != nil:
		return c.assert(f == *n.Literal, n, skema.CodeInvalidValue, "expected", *n.Literal)
	case n.Min != nil && f < *n.Min:
		return c.assert(false, n, skema.CodeTooSmall, "min", *n.Min, "got", f)
	case n.Max != nil && f > *n.Max:
		return c.assert(false, n, skema.CodeTooBig, "max", *n.Max, "got", f)
	}
	return c.assert(true, n, skema.CodeInvalidValue)
}

func (c checker) Boolean(n *skema.Boolean) bool {
	return c.assert(asBool(c.val), n, skema.CodeInvalidType, "expected", "boolean")
}

func (c checker) Null(n *skema.Null) bool {
	return c.assert(c.val == nil, n, skema.CodeInvalidType, "expected", "null")
}

// Function checks only that the value is callable; parameter and return
// shapes are documentation.
func (c checker) Function(n *skema.Function) bool {
	return c.assert(isFunc(c.val), n, skema.CodeInvalidType, "expected", "function")
}

func (c checker) Tuple(n *skema.Tuple) bool {
	seq, ok := asSeq(c.val)
	if !ok {
		return c.assert(false, n, skema.CodeInvalidType, "expected", "array")
	}
	switch {
	case len(seq) < len(n.Items):
		return c.assert(false, n, skema.CodeTooShort, "expected", len(n.Items), "got", len(seq))
	case len(seq) > len(n.Items):
		return c.assert(false, n, skema.CodeTooLong, "expected", len(n.Items), "got", len(seq))
	}
	all := true
	for i, item := range n.Items {
		if !c.at(item, seq[i], c.path.Index(i)) {
			all = false
			if c.quiet {
				break
			}
		}
	}
	return all
}

func (c checker) List(n *skema.List) bool {
	seq, ok := asSeq(c.val)
	if !ok {
		return c.assert(false, n, skema.CodeInvalidType, "expected", "array")
	}
	all := true
	for i, x := range seq {
		if !c.at(n.Item, x, c.path.Index(i)) {
			all = false
			if c.quiet {
				break
			}
		}
	}
	return all
}

// Object requires, for every declared property, some entry whose key and
// value both match. One entry may satisfy several properties.
func (c checker) Object(n *skema.Object) bool {
	entries, ok := asMap(c.val)
	if !ok {
		return c.assert(false, n, skema.CodeInvalidType, "expected", "object")
	}
	all := true
	for _, p := range n.Props {
		if c.satisfied(p, entries) {
			continue
		}
		all = false
		if c.quiet {
			break
		}
		if e, found := c.keyed(p, entries); found {
			// report why the value under a matching key fails
			c.at(p.Value, e.val, c.path.Field(e.name))
			continue
		}
		c.assert(false, n, skema.CodeRequired, "key", p.Name())
	}
	if all && !c.quiet && c.v.ambiguity != nil {
		c.reportAmbiguous(n, entries)
	}
	return all
}

func (c checker) satisfied(p skema.Prop, entries []entry) bool {
	for _, e := range entries {
		if c.try(p.Key, e.key) && c.try(p.Value, e.val) {
			return true
		}
	}
	return false
}

func (c checker) keyed(p skema.Prop, entries []entry) (entry, bool) {
	for _, e := range entries {
		if c.try(p.Key, e.key) {
			return e, true
		}
	}
	return entry{}, false
}

func (c checker) reportAmbiguous(n *skema.Object, entries []entry) {
	for _, e := range entries {
		var names []string
		for _, p := range n.Props {
			if c.try(p.Key, e.key) && c.try(p.Value, e.val) {
				names = append(names, p.Name())
			}
		}
		if len(names) > 1 {
			c.v.ambiguity(c.path.Field(e.name).Issue(skema.CodeAmbiguous, "entry satisfies several properties", "props", names))
		}
	}
}

// Dict requires every entry to match the key and value schemas.
func (c checker) Dict(n *skema.Dict) bool {
	entries, ok := asMap(c.val)
	if !ok {
		return c.assert(false, n, skema.CodeInvalidType, "expected", "object")
	}
	all := true
	for _, e := range entries {
		path := c.path.Field(e.name)
		keyOK := checker{v: c.v, val: e.key, path: path, quiet: c.quiet}.assert(c.try(n.Key, e.key), n.Key, skema.CodeInvalidKey, "expected", skema.Describe(n.Key))
		valOK := keyOK && c.at(n.Value, e.val, path)
		if !valOK {
			all = false
			if c.quiet {
				break
			}
		}
	}
	return all
}

// Or tries alternatives left to right and stops at the first match.
func (c checker) Or(n *skema.Or) bool {
	for _, alt := range n.Alts {
		if c.try(alt, c.val) {
			return c.assert(true, n, skema.CodeNoMatch)
		}
	}
	return c.assert(false, n, skema.CodeNoMatch)
}

func (c checker) Annotation(n *skema.Annotation) bool {
	return c.run(n.Inner)
}
