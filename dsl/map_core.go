package dsl

import skema "github.com/reoring/skema"

// Dict returns a homogeneous map schema: every entry of an input must match
// key and value.
func Dict(key, value skema.Node) *skema.Dict {
	mustNodes("Dict", key, value)
	return &skema.Dict{Key: key, Value: value}
}
