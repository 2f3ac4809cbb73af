package interpreter

import (
	"fmt"

	"github.com/serbanrobu/saida/pkg/ast"
	"github.com/serbanrobu/saida/pkg/runtime"
)

// Evaluate reduces a term to a semantic value under env. Variables with no
// binding become neutrals rather than errors, so open terms evaluate to
// stuck values that Quote can read back.
//
// Evaluation is defined over well-typed terms only. Applying a value that
// is neither a closure nor a neutral is a bug in the caller, not a user
// error, and panics.
func Evaluate(e ast.Expr, env *runtime.Environment) runtime.Value {
	switch e := e.(type) {
	case *ast.Application:
		switch fn := Evaluate(e.Fn, env).(type) {
		case *runtime.ClosureValue:
			arg := Evaluate(e.Arg, env)
			return Evaluate(fn.Body, fn.Env.Extend(fn.Param, arg))
		case *runtime.NeutralValue:
			return &runtime.NeutralValue{Neutral: &runtime.ApplicationNeutral{
				Fn:  fn.Neutral,
				Arg: Evaluate(e.Arg, env),
			}}
		default:
			panic(fmt.Sprintf("interpreter: cannot apply %s value", fn.Kind()))
		}
	case *ast.FunctionType:
		return &runtime.FunctionTypeValue{
			Domain:   Evaluate(e.Domain, env),
			Codomain: Evaluate(e.Codomain, env),
		}
	case *ast.Lambda:
		return &runtime.ClosureValue{Param: e.Param, Body: e.Body, Env: env}
	case *ast.LetBinding:
		bound := Evaluate(e.Value, env)
		return Evaluate(e.Body, env.Extend(e.Name, bound))
	case *ast.Universe:
		return &runtime.UniverseValue{Level: e.Level}
	case *ast.Variable:
		if v, ok := env.Get(e.Name); ok {
			return v
		}
		return &runtime.NeutralValue{Neutral: &runtime.VariableNeutral{Name: e.Name}}
	default:
		panic(fmt.Sprintf("interpreter: cannot evaluate %s node", e.NodeType()))
	}
}

// Normalize evaluates a term and reads the result back as syntax: the
// term's beta-normal form, with binders renamed away from scope.
func Normalize(e ast.Expr, env *runtime.Environment, scope Scope) ast.Expr {
	return Quote(Evaluate(e, env), scope)
}
