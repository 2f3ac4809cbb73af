package ast

// AlphaEq reports whether two terms are equal up to consistent renaming of
// bound variables. Free variables must match by name, bound variables by
// binder depth; a free variable never equals a bound one. Terms of different
// shapes are unequal.
func AlphaEq(a, b Expr) bool {
	return alphaEq(a, b, 0, map[string]int{}, map[string]int{})
}

// alphaEq walks both terms in lock step. xs and ys map each side's bound
// names to the depth at which they were bound; depth counts binders passed
// so far and is shared between the sides.
func alphaEq(a, b Expr, depth int, xs, ys map[string]int) bool {
	switch a := a.(type) {
	case *Application:
		b, ok := b.(*Application)
		if !ok {
			return false
		}
		return alphaEq(a.Fn, b.Fn, depth, xs, ys) && alphaEq(a.Arg, b.Arg, depth, xs, ys)
	case *FunctionType:
		b, ok := b.(*FunctionType)
		if !ok {
			return false
		}
		return alphaEq(a.Domain, b.Domain, depth, xs, ys) && alphaEq(a.Codomain, b.Codomain, depth, xs, ys)
	case *Lambda:
		b, ok := b.(*Lambda)
		if !ok {
			return false
		}
		return alphaEq(a.Body, b.Body, depth+1, bind(xs, a.Param, depth), bind(ys, b.Param, depth))
	case *LetBinding:
		b, ok := b.(*LetBinding)
		if !ok {
			return false
		}
		if !alphaEq(a.Value, b.Value, depth, xs, ys) {
			return false
		}
		return alphaEq(a.Body, b.Body, depth+1, bind(xs, a.Name, depth), bind(ys, b.Name, depth))
	case *Universe:
		b, ok := b.(*Universe)
		if !ok {
			return false
		}
		return a.Level == b.Level
	case *Variable:
		b, ok := b.(*Variable)
		if !ok {
			return false
		}
		i, aBound := xs[a.Name]
		j, bBound := ys[b.Name]
		if aBound != bBound {
			return false
		}
		if aBound {
			return i == j
		}
		return a.Name == b.Name
	default:
		return false
	}
}

// bind returns a copy of depths with name bound at depth. Copying keeps
// sibling subtrees from seeing each other's binders.
func bind(depths map[string]int, name string, depth int) map[string]int {
	out := make(map[string]int, len(depths)+1)
	for k, v := range depths {
		out[k] = v
	}
	out[name] = depth
	return out
}
