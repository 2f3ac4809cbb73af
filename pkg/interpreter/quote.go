package interpreter

import (
	"fmt"
	"sort"

	"github.com/serbanrobu/saida/pkg/ast"
	"github.com/serbanrobu/saida/pkg/runtime"
)

// Scope is the set of identifier names quotation must avoid when naming
// binders: the free variables of the value being quoted plus any binders
// already in force around the hole the result will fill. Scopes are not
// mutated after construction; With returns an extended copy, so sibling
// subtrees quote against independent scopes.
type Scope map[string]struct{}

// NewScope builds a scope containing the given names.
func NewScope(names ...string) Scope {
	s := make(Scope, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}
	return s
}

// Has reports whether name is in scope.
func (s Scope) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// With returns a copy of s that also contains name.
func (s Scope) With(name string) Scope {
	out := make(Scope, len(s)+1)
	for k := range s {
		out[k] = struct{}{}
	}
	out[name] = struct{}{}
	return out
}

// Names returns the scope's contents in sorted order.
func (s Scope) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Freshen returns name unchanged if it is not in scope, otherwise the name
// with apostrophes appended until it no longer collides.
func Freshen(name string, scope Scope) string {
	for scope.Has(name) {
		name += "'"
	}
	return name
}

// Quote reads a value back as syntax. Closures are unfolded by applying
// them to a fresh variable: the parameter is freshened against scope and
// bound to a neutral carrying the fresh name in a copy of the captured
// environment; the body is then evaluated there and quoted with the fresh
// name added to scope.
func Quote(v runtime.Value, scope Scope) ast.Expr {
	switch v := v.(type) {
	case *runtime.FunctionTypeValue:
		return ast.Fun(Quote(v.Domain, scope), Quote(v.Codomain, scope))
	case *runtime.ClosureValue:
		param := Freshen(v.Param, scope)
		unfolded := Evaluate(v.Body, v.Env.Extend(param, &runtime.NeutralValue{
			Neutral: &runtime.VariableNeutral{Name: param},
		}))
		return ast.Lam(param, Quote(unfolded, scope.With(param)))
	case *runtime.NeutralValue:
		return quoteNeutral(v.Neutral, scope)
	case *runtime.UniverseValue:
		return ast.U(v.Level)
	default:
		panic(fmt.Sprintf("interpreter: cannot quote %s value", v.Kind()))
	}
}

func quoteNeutral(n runtime.Neutral, scope Scope) ast.Expr {
	switch n := n.(type) {
	case *runtime.VariableNeutral:
		return ast.Var(n.Name)
	case *runtime.ApplicationNeutral:
		return ast.App(quoteNeutral(n.Fn, scope), Quote(n.Arg, scope))
	default:
		panic(fmt.Sprintf("interpreter: cannot quote %T neutral", n))
	}
}
