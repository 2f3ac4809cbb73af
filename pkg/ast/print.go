package ast

import (
	"fmt"
	"strconv"
)

// Sprint renders a term in surface notation: `\x. e` for lambdas, `f a` for
// application, `a -> b` for function types (right associative),
// `let x = v in e` for bindings and `Un` for universes.
func Sprint(e Expr) string {
	return sprintExpr(e, precOuter)
}

const (
	precOuter = iota
	precArrow
	precApp
	precAtom
)

func sprintExpr(e Expr, prec int) string {
	switch e := e.(type) {
	case *Application:
		s := sprintExpr(e.Fn, precApp) + " " + sprintExpr(e.Arg, precAtom)
		if prec > precApp {
			return "(" + s + ")"
		}
		return s
	case *FunctionType:
		s := sprintExpr(e.Domain, precArrow) + " -> " + sprintExpr(e.Codomain, precOuter)
		if prec > precOuter {
			return "(" + s + ")"
		}
		return s
	case *Lambda:
		s := "\\" + e.Param + ". " + sprintExpr(e.Body, precOuter)
		if prec > precOuter {
			return "(" + s + ")"
		}
		return s
	case *LetBinding:
		s := "let " + e.Name + " = " + sprintExpr(e.Value, precOuter) + " in " + sprintExpr(e.Body, precOuter)
		if prec > precOuter {
			return "(" + s + ")"
		}
		return s
	case *Universe:
		return "U" + strconv.Itoa(int(e.Level))
	case *Variable:
		return e.Name
	default:
		return fmt.Sprintf("<%s>", e.NodeType())
	}
}
