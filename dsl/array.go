package dsl

import skema "github.com/reoring/skema"

// Tuple returns a fixed-length, positional sequence schema.
func Tuple(items ...skema.Node) *skema.Tuple {
	mustNodes("Tuple", items...)
	return &skema.Tuple{Items: items}
}

// List returns a schema for sequences whose elements all match item.
func List(item skema.Node) *skema.List {
	mustNodes("List", item)
	return &skema.List{Item: item}
}
