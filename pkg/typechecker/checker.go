package typechecker

import (
	"fmt"

	"github.com/serbanrobu/saida/pkg/ast"
	"github.com/serbanrobu/saida/pkg/interpreter"
	"github.com/serbanrobu/saida/pkg/runtime"
)

// Check validates e against the expected type t under cx. The expected
// type is a semantic value: callers evaluate type expressions before
// passing them in. The first failure aborts the walk.
func Check(e ast.Expr, t runtime.Type, cx *Context) error {
	switch e := e.(type) {
	case *ast.FunctionType:
		if _, ok := t.(*runtime.UniverseValue); ok {
			if err := Check(e.Domain, t, cx); err != nil {
				return err
			}
			return Check(e.Codomain, t, cx)
		}
	case *ast.Lambda:
		if ft, ok := t.(*runtime.FunctionTypeValue); ok {
			return Check(e.Body, ft.Codomain, cx.Extend(e.Param, ft.Domain))
		}
	case *ast.LetBinding:
		bound, err := Infer(e.Value, cx)
		if err != nil {
			return err
		}
		return Check(e.Body, t, cx.Extend(e.Name, bound))
	case *ast.Universe:
		if u, ok := t.(*runtime.UniverseValue); ok {
			if e.Level < u.Level {
				return nil
			}
			return fmt.Errorf("typechecker: U%d does not inhabit U%d: %w", e.Level, u.Level, ErrUniverseLevel)
		}
	}

	// No checking rule applies: synthesize a type and compare it with the
	// expected one, both quoted against the names the context knows.
	inferred, err := Infer(e, cx)
	if err != nil {
		return err
	}
	scope := interpreter.NewScope(cx.Names()...)
	got := interpreter.Quote(inferred, scope)
	want := interpreter.Quote(t, scope)
	if !ast.AlphaEq(got, want) {
		return fmt.Errorf("typechecker: %s has type %s, want %s: %w", ast.Sprint(e), ast.Sprint(got), ast.Sprint(want), ErrTypeMismatch)
	}
	return nil
}

// Infer synthesizes a type for e under cx. Variables, applications and
// lets admit synthesis; lambdas, function types and universes carry no
// annotation and can only be checked against an expected type.
func Infer(e ast.Expr, cx *Context) (runtime.Type, error) {
	switch e := e.(type) {
	case *ast.Application:
		headType, err := Infer(e.Fn, cx)
		if err != nil {
			return nil, err
		}
		ft, ok := headType.(*runtime.FunctionTypeValue)
		if !ok {
			scope := interpreter.NewScope(cx.Names()...)
			return nil, fmt.Errorf("typechecker: %s has type %s: %w", ast.Sprint(e.Fn), ast.Sprint(interpreter.Quote(headType, scope)), ErrNotAFunction)
		}
		if err := Check(e.Arg, ft.Domain, cx); err != nil {
			return nil, err
		}
		return ft.Codomain, nil
	case *ast.LetBinding:
		bound, err := Infer(e.Value, cx)
		if err != nil {
			return nil, err
		}
		return Infer(e.Body, cx.Extend(e.Name, bound))
	case *ast.Variable:
		t, ok := cx.Get(e.Name)
		if !ok {
			return nil, fmt.Errorf("typechecker: %q: %w", e.Name, ErrUnknownIdentifier)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("typechecker: %s: %w", ast.Sprint(e), ErrCannotInfer)
	}
}
