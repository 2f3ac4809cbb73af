package runtime

import (
	"github.com/google/btree"
)

// binding pairs an identifier with its value. Entries are ordered by name.
type binding struct {
	name  string
	value Value
}

func lessBinding(a, b binding) bool { return a.name < b.name }

const bindingDegree = 8

// Environment is a persistent mapping from identifiers to values. Extend
// returns a new environment and never mutates the receiver, so an
// environment captured inside a closure keeps exactly the bindings it had
// at capture time. Unmodified entries are shared structurally between an
// environment and its extensions.
//
// A nil *Environment is the empty environment.
type Environment struct {
	tree *btree.BTreeG[binding]
}

// NewEnvironment returns an empty environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// Extend returns a new environment with name bound to value, shadowing any
// existing binding for name.
func (e *Environment) Extend(name string, value Value) *Environment {
	var tree *btree.BTreeG[binding]
	if e == nil || e.tree == nil {
		tree = btree.NewG(bindingDegree, lessBinding)
	} else {
		tree = e.tree.Clone()
	}
	tree.ReplaceOrInsert(binding{name: name, value: value})
	return &Environment{tree: tree}
}

// Get retrieves the value bound to name.
func (e *Environment) Get(name string) (Value, bool) {
	if e == nil || e.tree == nil {
		return nil, false
	}
	b, ok := e.tree.Get(binding{name: name})
	if !ok {
		return nil, false
	}
	return b.value, true
}

// Names returns the bound identifiers in sorted order.
func (e *Environment) Names() []string {
	if e == nil || e.tree == nil {
		return nil
	}
	names := make([]string, 0, e.tree.Len())
	e.tree.Ascend(func(b binding) bool {
		names = append(names, b.name)
		return true
	})
	return names
}

// Len reports the number of bindings.
func (e *Environment) Len() int {
	if e == nil || e.tree == nil {
		return 0
	}
	return e.tree.Len()
}
