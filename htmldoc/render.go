// Package htmldoc renders skema schemas as HTML documentation.
//
// A page documents a list of top-level schemas. Inside each one, a nested
// schema that is itself top-level is shown as a link to its own entry. A
// titled schema that is not top-level is expanded, with an anchor, the first
// time it appears and linked everywhere after that.
package htmldoc

import (
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	skema "github.com/reoring/skema"
)

// Renderer turns schemas into markup. Diagnostics for defective input (an
// untitled top-level schema, clashing titles) go to the logger; rendering
// never fails as a whole.
type Renderer struct {
	log *slog.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger for diagnostics. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.log = l
		}
	}
}

func New(opts ...Option) *Renderer {
	r := &Renderer{log: slog.Default()}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Render returns the markup fragment for s. Nested members of top are linked
// rather than expanded; s itself is always expanded.
func Render(s skema.Node, top []skema.Node) string { return New().Render(s, top) }

func (r *Renderer) Render(s skema.Node, top []skema.Node) string {
	p := r.newPass(top)
	return r.serialize(p.fragment(s))
}

// Document renders every schema of tops, in order, into a complete page.
// Named schemas shared between entries are expanded once per page.
func (r *Renderer) Document(tops []skema.Node) string {
	p := r.newPass(tops)
	body := elem(atom.Body, "")
	for i, s := range tops {
		if i > 0 {
			body.AppendChild(elem(atom.Br, ""))
		}
		body.AppendChild(p.fragment(s))
	}
	style := elem(atom.Style, "", text(css))
	page := elem(atom.Html, "", elem(atom.Head, "", style), body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(page)
	return r.serialize(doc)
}

func (r *Renderer) serialize(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		r.log.Error("render html", "err", err)
	}
	return b.String()
}

// pass holds the state of one Render or Document call.
type pass struct {
	log  *slog.Logger
	top  map[skema.Node]bool
	seen map[skema.Node]bool // titled nodes already expanded with an anchor
	root skema.Node

	ids    map[string]string // title -> element id
	owners map[string]string // element id -> title
}

func (r *Renderer) newPass(top []skema.Node) *pass {
	p := &pass{
		log:    r.log,
		top:    make(map[skema.Node]bool, len(top)),
		seen:   map[skema.Node]bool{},
		ids:    map[string]string{},
		owners: map[string]string{},
	}
	titles := map[string]skema.Node{}
	for _, n := range top {
		if n == nil {
			continue
		}
		p.top[n] = true
		t := n.Meta().Title
		if t == "" {
			continue
		}
		if other, ok := titles[t]; ok && other != n {
			p.log.Warn("duplicate title in top-level set", "title", t)
			continue
		}
		titles[t] = n
		p.anchor(t)
	}
	return p
}

// anchor returns the element id of title within the pass. Ids are handed out
// on first use; a title whose Anchor is taken gets "-2", "-3" and so on.
func (p *pass) anchor(title string) string {
	if id, ok := p.ids[title]; ok {
		return id
	}
	base := Anchor(title)
	id := base
	for i := 2; ; i++ {
		other, taken := p.owners[id]
		if !taken {
			break
		}
		if i == 2 {
			p.log.Warn("titles share an anchor", "title", title, "other", other, "anchor", base)
		}
		id = base + "-" + strconv.Itoa(i)
	}
	p.ids[title] = id
	p.owners[id] = title
	return id
}

// fragment renders a root: heading and subtitle, then the expanded body.
func (p *pass) fragment(s skema.Node) *html.Node {
	div := elem(atom.Div, "schema")
	if s == nil {
		p.log.Warn("nil schema in document")
		div.AppendChild(missing())
		return div
	}
	p.root = s
	opts := s.Meta()
	switch {
	case opts.Title != "":
		setAttr(div, "id", p.anchor(opts.Title))
		div.AppendChild(elem(atom.H3, "title", text(opts.Title)))
		p.seen[s] = true
	case p.top[s]:
		p.log.Warn("top-level schema has no title", "err", skema.ErrMissingAnchor, "tag", s.Tag().String())
	}
	if opts.Description != "" {
		div.AppendChild(elem(atom.P, "subtitle", text(opts.Description)))
	}
	div.AppendChild(p.body(s))
	return div
}

func (p *pass) body(n skema.Node) *html.Node { return skema.Dispatch[*html.Node](n, p) }

// child renders a nested node: a link when it is documented elsewhere,
// otherwise its expansion.
func (p *pass) child(n skema.Node) *html.Node {
	if n == nil {
		p.log.Warn("nil schema in document")
		return missing()
	}
	title := n.Meta().Title
	if p.top[n] && n != p.root {
		if title == "" {
			p.log.Warn("top-level schema has no title", "err", skema.ErrMissingAnchor, "tag", n.Tag().String())
			return missing()
		}
		return link(title, p.anchor(title))
	}
	if title == "" {
		return p.body(n)
	}
	if p.seen[n] {
		return link(title, p.anchor(title))
	}
	p.seen[n] = true
	named := span("named", p.body(n))
	if d := n.Meta().Description; d != "" {
		setAttr(named, "title", d)
	}
	return setAttr(named, "id", p.anchor(title))
}

func (p *pass) children(ns []skema.Node) []*html.Node {
	out := make([]*html.Node, len(ns))
	for i, n := range ns {
		out[i] = p.child(n)
	}
	return out
}

func missing() *html.Node { return span("missing", text("?")) }

func (p *pass) String(n *skema.String) *html.Node {
	switch {
	case n.IsLiteral():
		return text(strconv.Quote(*n.Literal))
	case n.Pattern != "":
		return text("/" + n.Pattern + "/")
	}
	return italic("string")
}

func (p *pass) Number(n *skema.Number) *html.Node {
	switch {
	case n.Literal != nil:
		return text(formatNumber(*n.Literal))
	case n.IsInterval():
		lo, hi := "-∞", "∞"
		if n.Min != nil {
			lo = formatNumber(*n.Min)
		}
		if n.Max != nil {
			hi = formatNumber(*n.Max)
		}
		return italic("number [" + lo + ", " + hi + "]")
	}
	return italic("number")
}

func formatNumber(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

func (p *pass) Boolean(*skema.Boolean) *html.Node { return italic("boolean") }

func (p *pass) Null(*skema.Null) *html.Node { return italic("null") }

func (p *pass) Function(n *skema.Function) *html.Node {
	g := group(italic("fn"), text("("))
	for _, c := range join(p.children(n.Params), ", ") {
		g.AppendChild(c)
	}
	g.AppendChild(text(")"))
	if n.Returns != nil {
		g.AppendChild(text(" → "))
		g.AppendChild(p.child(n.Returns))
	}
	return g
}

func (p *pass) Tuple(n *skema.Tuple) *html.Node {
	g := group(text("["))
	for _, c := range join(p.children(n.Items), ", ") {
		g.AppendChild(c)
	}
	g.AppendChild(text("]"))
	return g
}

func (p *pass) List(n *skema.List) *html.Node {
	return group(text("["), p.child(n.Item), text(", ...]"))
}

// Object lays out one row per property: the open brace, the key, then the
// value. The closing brace follows the last value.
func (p *pass) Object(n *skema.Object) *html.Node {
	if len(n.Props) == 0 {
		return text("{}")
	}
	rows := make([]*html.Node, len(n.Props))
	for i, prop := range n.Props {
		rows[i] = p.objRow(i == 0, i == len(n.Props)-1, p.key(prop), p.child(prop.Value), nil)
	}
	return table("obj", rows...)
}

// Dict is drawn like an object with a single representative row.
func (p *pass) Dict(n *skema.Dict) *html.Node {
	key := p.key(skema.Prop{Kind: skema.KeyKindOf(n.Key), Key: n.Key})
	return table("obj", p.objRow(true, true, key, p.child(n.Value), span("ellipsis", text(", ..."))))
}

func (p *pass) objRow(first, last bool, key, val, tail *html.Node) *html.Node {
	name := td("obj-name")
	if first {
		name.AppendChild(text("{"))
	}
	vals := td("obj-vals", val)
	if tail != nil {
		vals.AppendChild(tail)
	}
	if last {
		vals.AppendChild(text("}"))
	}
	return row(name, td("obj-keys", key, text(" :: ")), vals)
}

func (p *pass) key(prop skema.Prop) *html.Node {
	switch prop.Kind {
	case skema.KeyLiteral:
		return text(prop.Name())
	case skema.KeyPattern:
		return text("/" + prop.Name() + "/")
	}
	return p.child(prop.Key)
}

func (p *pass) Or(n *skema.Or) *html.Node {
	alts := make([]*html.Node, len(n.Alts))
	for i, a := range n.Alts {
		alts[i] = span("or-alt", p.child(a))
	}
	return group(join(alts, " | ")...)
}

// Annotation renders the wrapped schema followed by its role badge.
func (p *pass) Annotation(n *skema.Annotation) *html.Node {
	g := group(p.child(n.Inner))
	if role := n.Meta().Role; role != "" {
		g.AppendChild(span("role", text(role)))
	}
	return g
}
