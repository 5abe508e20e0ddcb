package dsl

import skema "github.com/reoring/skema"

// Role labels n with a role, e.g. Role("low", Number()) inside a tuple.
func Role(label string, n skema.Node) *skema.Annotation {
	mustNodes("Role", n)
	return &skema.Annotation{Options: skema.Options{Role: label}, Inner: n}
}

// Describe returns a copy of n carrying a title and description. An empty
// title documents n without making it a cross-reference target. The copy is
// a new identity: reuse the returned node wherever it is referenced.
func Describe(title, description string, n skema.Node) skema.Node {
	mustNodes("Describe", n)
	opts := n.Meta()
	opts.Title = title
	opts.Description = description
	return skema.WithOptions(n, opts)
}
