package typechecker

import (
	"github.com/google/btree"

	"github.com/serbanrobu/saida/pkg/runtime"
)

// entry pairs an identifier with its type. Entries are ordered by name.
type entry struct {
	name string
	typ  runtime.Type
}

func lessEntry(a, b entry) bool { return a.name < b.name }

const entryDegree = 8

// Context is a persistent mapping from identifiers to their types. Extend
// returns a new context and never mutates the receiver, so checking a
// binder's body cannot leak bindings into sibling subtrees. Unmodified
// entries are shared structurally between a context and its extensions.
//
// A nil *Context is the empty context.
type Context struct {
	tree *btree.BTreeG[entry]
}

// NewContext returns an empty context.
func NewContext() *Context {
	return &Context{}
}

// Extend returns a new context with name assigned the given type,
// shadowing any existing assignment for name.
func (c *Context) Extend(name string, typ runtime.Type) *Context {
	var tree *btree.BTreeG[entry]
	if c == nil || c.tree == nil {
		tree = btree.NewG(entryDegree, lessEntry)
	} else {
		tree = c.tree.Clone()
	}
	tree.ReplaceOrInsert(entry{name: name, typ: typ})
	return &Context{tree: tree}
}

// Get retrieves the type assigned to name.
func (c *Context) Get(name string) (runtime.Type, bool) {
	if c == nil || c.tree == nil {
		return nil, false
	}
	e, ok := c.tree.Get(entry{name: name})
	if !ok {
		return nil, false
	}
	return e.typ, true
}

// Names returns the assigned identifiers in sorted order.
func (c *Context) Names() []string {
	if c == nil || c.tree == nil {
		return nil
	}
	names := make([]string, 0, c.tree.Len())
	c.tree.Ascend(func(e entry) bool {
		names = append(names, e.name)
		return true
	})
	return names
}

// Len reports the number of assignments.
func (c *Context) Len() int {
	if c == nil || c.tree == nil {
		return 0
	}
	return c.tree.Len()
}
