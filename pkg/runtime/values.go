package runtime

import (
	"fmt"

	"github.com/serbanrobu/saida/pkg/ast"
)

// Kind identifies the semantic value category.
type Kind int

const (
	KindFunctionType Kind = iota
	KindClosure
	KindNeutral
	KindUniverse
)

func (k Kind) String() string {
	switch k {
	case KindFunctionType:
		return "function_type"
	case KindClosure:
		return "closure"
	case KindNeutral:
		return "neutral"
	case KindUniverse:
		return "universe"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the semantic domain: what terms evaluate to. Values are inert;
// computation happens only in evaluation and quotation.
type Value interface {
	Kind() Kind
}

// Type is an alias for Value: a type is an evaluated term inhabiting some
// universe, and the checker manipulates types in evaluated form.
type Type = Value

// FunctionTypeValue is an evaluated function type with both sides already
// evaluated.
type FunctionTypeValue struct {
	Domain   Value
	Codomain Value
}

func (v *FunctionTypeValue) Kind() Kind { return KindFunctionType }

// ClosureValue pairs a lambda's parameter and unevaluated body with the
// environment the lambda was evaluated in. The captured environment is
// frozen: bindings made after capture are never visible through it.
type ClosureValue struct {
	Param string
	Body  ast.Expr
	Env   *Environment
}

func (v *ClosureValue) Kind() Kind { return KindClosure }

// NeutralValue wraps a stuck computation.
type NeutralValue struct {
	Neutral Neutral
}

func (v *NeutralValue) Kind() Kind { return KindNeutral }

// UniverseValue is an evaluated universe.
type UniverseValue struct {
	Level ast.Level
}

func (v *UniverseValue) Kind() Kind { return KindUniverse }

//-----------------------------------------------------------------------------
// Neutrals
//-----------------------------------------------------------------------------

// Neutral is a computation blocked on a variable with no binding: either
// the variable itself, or an application whose head is neutral. Neutrals
// grow only by application; eliminating one is impossible until quotation
// reads it back as syntax.
type Neutral interface {
	isNeutral()
}

// VariableNeutral is a reference to a variable bound in no environment.
type VariableNeutral struct {
	Name string
}

func (*VariableNeutral) isNeutral() {}

// ApplicationNeutral is an application stuck on a neutral head. The
// argument is fully evaluated.
type ApplicationNeutral struct {
	Fn  Neutral
	Arg Value
}

func (*ApplicationNeutral) isNeutral() {}
