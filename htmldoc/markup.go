package htmldoc

import (
	"github.com/iancoleman/strcase"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Anchor returns the preferred element id for a titled schema. It depends on
// the title only, so links stay valid whichever parent expands the schema
// first. Titles that share an anchor get a numeric suffix per page.
func Anchor(title string) string { return strcase.ToKebab(title) }

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func elem(a atom.Atom, class string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: a.String(), DataAtom: a}
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func span(class string, children ...*html.Node) *html.Node {
	return elem(atom.Span, class, children...)
}

// italic marks a type placeholder such as "string".
func italic(s string) *html.Node { return span("it", text(s)) }

func setAttr(n *html.Node, key, val string) *html.Node {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return n
}

func link(title, id string) *html.Node {
	a := elem(atom.A, "ref", text(title))
	return setAttr(a, "href", "#"+id)
}

// group returns a span holding children without a class, used where several
// nodes stand in one position.
func group(children ...*html.Node) *html.Node { return span("", children...) }

// join interleaves sep between parts.
func join(parts []*html.Node, sep string) []*html.Node {
	out := make([]*html.Node, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			out = append(out, text(sep))
		}
		out = append(out, p)
	}
	return out
}

func table(class string, rows ...*html.Node) *html.Node {
	return elem(atom.Table, class, elem(atom.Tbody, "", rows...))
}

func row(cells ...*html.Node) *html.Node { return elem(atom.Tr, "", cells...) }

func td(class string, children ...*html.Node) *html.Node {
	return elem(atom.Td, class, children...)
}
