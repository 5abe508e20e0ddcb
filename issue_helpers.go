package skema

// IssueAt creates an Issue at p with the given code, message and params.
func IssueAt(p PathRef, code, msg string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}

// Describe names a node for Issue hints: its title, else its tag.
func Describe(n Node) string {
	if n == nil {
		return ""
	}
	if t := n.Meta().Title; t != "" {
		return t
	}
	return n.Tag().String()
}
