package skema

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// refKeyPrefix marks a map key that stands for a registered schema. The NUL
// byte keeps it from colliding with keys a schema author would type.
const refKeyPrefix = "\x00ref:"

// Registry holds the named schemas of a program. Every registered node gets a
// synthetic id whose key token can be used as a Go map key in place of the
// node itself; Resolve turns the token back into the node.
//
// Entries are never removed. A registry is safe for concurrent use.
type Registry struct {
	mu sync.RWMutex

	next    uint64
	byTitle map[string]Node
	byKey   map[string]Node
	keys    map[Node]string
	order   []Node
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byTitle: make(map[string]Node),
		byKey:   make(map[string]Node),
		keys:    make(map[Node]string),
	}
}

// Register adds a titled node and returns its key token. Registering the same
// node twice returns the existing token; registering a different node under a
// taken title fails with ErrDuplicateTitle.
func (r *Registry) Register(n Node) (string, error) {
	if n == nil {
		return "", ErrNilSchema
	}
	title := n.Meta().Title
	if title == "" {
		return "", fmt.Errorf("%w: cannot register untitled %s", ErrMissingAnchor, n.Tag())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if key, ok := r.keys[n]; ok {
		return key, nil
	}
	if _, exists := r.byTitle[title]; exists {
		return "", fmt.Errorf("%w: %q", ErrDuplicateTitle, title)
	}
	r.next++
	key := refKeyPrefix + strconv.FormatUint(r.next, 10)
	r.byTitle[title] = n
	r.byKey[key] = n
	r.keys[n] = key
	r.order = append(r.order, n)
	return key, nil
}

// KeyOf returns the key token of a registered node.
func (r *Registry) KeyOf(n Node) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := r.keys[n]
	return key, ok
}

// Resolve returns the node bound to a key token.
func (r *Registry) Resolve(key string) (Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.byKey[key]
	return n, ok
}

// Lookup returns the node registered under title.
func (r *Registry) Lookup(title string) (Node, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n, ok := r.byTitle[title]
	return n, ok
}

// Nodes returns the registered nodes in registration order.
func (r *Registry) Nodes() []Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Node(nil), r.order...)
}

// Titles returns the registered titles in registration order.
func (r *Registry) Titles() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	for i, n := range r.order {
		out[i] = n.Meta().Title
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// IsRefKey reports whether s has the shape of a registry key token.
func IsRefKey(s string) bool { return strings.HasPrefix(s, refKeyPrefix) }
