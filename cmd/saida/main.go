package main

import (
	"fmt"
	"os"

	"github.com/serbanrobu/saida/pkg/ast"
	"github.com/serbanrobu/saida/pkg/interpreter"
	"github.com/serbanrobu/saida/pkg/runtime"
	"github.com/serbanrobu/saida/pkg/typechecker"
)

const cliVersion = "saida 0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return runDemo()
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliVersion)
		return 0
	case "demo":
		return runDemo()
	case "check":
		return runCheckDemo()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		printUsage()
		return 1
	}
}

// runDemo normalizes a term whose binder collides with a free variable:
// (\x. \y. y) applied to the free y, so the surviving binder is renamed
// to y'.
func runDemo() int {
	term := ast.App(ast.Lam("x", ast.Lam("y", ast.Var("y"))), ast.Var("y"))
	normal := interpreter.Normalize(term, runtime.NewEnvironment(), interpreter.NewScope("y"))

	fmt.Fprintf(os.Stdout, "term:   %s\n", ast.Sprint(term))
	fmt.Fprintf(os.Stdout, "normal: %s\n", ast.Sprint(normal))
	return 0
}

// runCheckDemo runs the checker over a pair of inhabitation claims and
// reports each verdict.
func runCheckDemo() int {
	claims := []struct {
		term ast.Expr
		typ  ast.Expr
	}{
		{ast.Fun(ast.U(0), ast.U(0)), ast.U(1)},
		{ast.Lam("x", ast.Var("x")), ast.Fun(ast.U(0), ast.U(0))},
	}

	code := 0
	for _, c := range claims {
		expected := interpreter.Evaluate(c.typ, runtime.NewEnvironment())
		if err := typechecker.Check(c.term, expected, typechecker.NewContext()); err != nil {
			fmt.Fprintf(os.Stderr, "%s : %s failed: %v\n", ast.Sprint(c.term), ast.Sprint(c.typ), err)
			code = 1
			continue
		}
		fmt.Fprintf(os.Stdout, "%s : %s ok\n", ast.Sprint(c.term), ast.Sprint(c.typ))
	}
	return code
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  saida            normalize the capture-avoidance demo term")
	fmt.Fprintln(os.Stderr, "  saida demo       same as the default invocation")
	fmt.Fprintln(os.Stderr, "  saida check      typecheck the demo inhabitation claims")
	fmt.Fprintln(os.Stderr, "  saida --version  print the tool version")
}
