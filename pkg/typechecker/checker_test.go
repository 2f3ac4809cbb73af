package typechecker

import (
	"errors"
	"strings"
	"testing"

	"github.com/serbanrobu/saida/pkg/ast"
	"github.com/serbanrobu/saida/pkg/interpreter"
	"github.com/serbanrobu/saida/pkg/runtime"
)

func universe(level ast.Level) runtime.Type {
	return &runtime.UniverseValue{Level: level}
}

// typeOf evaluates a type expression under the empty environment, turning
// free variables into neutral types.
func typeOf(e ast.Expr) runtime.Type {
	return interpreter.Evaluate(e, runtime.NewEnvironment())
}

func TestCheckUniverseCumulativity(t *testing.T) {
	if err := Check(ast.U(0), universe(1), NewContext()); err != nil {
		t.Fatalf("Check(U0, U1) error: %v", err)
	}
	if err := Check(ast.U(0), universe(3), NewContext()); err != nil {
		t.Fatalf("Check(U0, U3) error: %v", err)
	}

	err := Check(ast.U(1), universe(1), NewContext())
	if !errors.Is(err, ErrUniverseLevel) {
		t.Fatalf("Check(U1, U1) error = %v, want universe level failure", err)
	}
	err = Check(ast.U(2), universe(1), NewContext())
	if !errors.Is(err, ErrUniverseLevel) {
		t.Fatalf("Check(U2, U1) error = %v, want universe level failure", err)
	}
}

func TestCheckFunctionTypeFormation(t *testing.T) {
	if err := Check(ast.Fun(ast.U(0), ast.U(0)), universe(1), NewContext()); err != nil {
		t.Fatalf("Check(U0 -> U0, U1) error: %v", err)
	}

	// Both sides must inhabit the same universe.
	err := Check(ast.Fun(ast.U(1), ast.U(0)), universe(1), NewContext())
	if !errors.Is(err, ErrUniverseLevel) {
		t.Fatalf("Check(U1 -> U0, U1) error = %v, want universe level failure", err)
	}
	if err := Check(ast.Fun(ast.U(1), ast.U(0)), universe(2), NewContext()); err != nil {
		t.Fatalf("Check(U1 -> U0, U2) error: %v", err)
	}
}

func TestCheckLambdaAgainstFunctionType(t *testing.T) {
	idType := typeOf(ast.Fun(ast.U(0), ast.U(0)))
	if err := Check(ast.Lam("x", ast.Var("x")), idType, NewContext()); err != nil {
		t.Fatalf("Check(\\x. x, U0 -> U0) error: %v", err)
	}

	constType := typeOf(ast.Fun(ast.U(0), ast.Fun(ast.U(0), ast.U(0))))
	konst := ast.Lam("x", ast.Lam("y", ast.Var("x")))
	if err := Check(konst, constType, NewContext()); err != nil {
		t.Fatalf("Check(\\x. \\y. x, U0 -> U0 -> U0) error: %v", err)
	}

	// The body is checked under the extended context, so a body of the
	// wrong type surfaces as a mismatch against the codomain.
	wrongCodomain := typeOf(ast.Fun(ast.U(0), ast.U(1)))
	err := Check(ast.Lam("x", ast.Var("x")), wrongCodomain, NewContext())
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Check(\\x. x, U0 -> U1) error = %v, want type mismatch", err)
	}

	// A universe-leveled body failure keeps its own class.
	err = Check(ast.Lam("x", ast.U(1)), idType, NewContext())
	if !errors.Is(err, ErrUniverseLevel) {
		t.Fatalf("Check(\\x. U1, U0 -> U0) error = %v, want universe level failure", err)
	}
}

func TestCheckHigherOrderApplication(t *testing.T) {
	// g : U1 -> U0 |- \g. g U0 : (U1 -> U0) -> U0
	fnType := typeOf(ast.Fun(ast.Fun(ast.U(1), ast.U(0)), ast.U(0)))
	e := ast.Lam("g", ast.App(ast.Var("g"), ast.U(0)))
	if err := Check(e, fnType, NewContext()); err != nil {
		t.Fatalf("Check error: %v", err)
	}
}

func TestCheckComparesTypesUpToEvaluation(t *testing.T) {
	// The expected type arrives as a value, so a redex producing
	// U0 -> U0 checks the same terms as the literal type.
	evaluated := typeOf(ast.App(ast.Lam("t", ast.Var("t")), ast.Fun(ast.U(0), ast.U(0))))
	if err := Check(ast.Lam("x", ast.Var("x")), evaluated, NewContext()); err != nil {
		t.Fatalf("Check against evaluated type error: %v", err)
	}
}

func TestCheckNeutralTypes(t *testing.T) {
	cx := NewContext().
		Extend("A", universe(0)).
		Extend("B", universe(0)).
		Extend("x", typeOf(ast.Var("A"))).
		Extend("y", typeOf(ast.Var("B")))

	if err := Check(ast.Var("x"), typeOf(ast.Var("A")), cx); err != nil {
		t.Fatalf("Check(x, A) error: %v", err)
	}

	err := Check(ast.Var("y"), typeOf(ast.Var("A")), cx)
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("Check(y, A) error = %v, want type mismatch", err)
	}
}

func TestCheckLetBindsInferredType(t *testing.T) {
	cx := NewContext().Extend("a", typeOf(ast.Var("A"))).Extend("A", universe(0))

	// let b = a in b checks against A.
	e := ast.Let("b", ast.Var("a"), ast.Var("b"))
	if err := Check(e, typeOf(ast.Var("A")), cx); err != nil {
		t.Fatalf("Check(let b = a in b, A) error: %v", err)
	}

	// The let rule applies for any expected type, including universes.
	if err := Check(ast.Let("t", ast.Var("A"), ast.U(0)), universe(1), cx); err != nil {
		t.Fatalf("Check(let t = A in U0, U1) error: %v", err)
	}
}

func TestInferVariable(t *testing.T) {
	cx := NewContext().Extend("x", universe(0))
	typ, err := Infer(ast.Var("x"), cx)
	if err != nil {
		t.Fatalf("Infer(x) error: %v", err)
	}
	u, ok := typ.(*runtime.UniverseValue)
	if !ok || u.Level != 0 {
		t.Fatalf("Infer(x) = %#v, want universe 0", typ)
	}

	_, err = Infer(ast.Var("ghost"), cx)
	if !errors.Is(err, ErrUnknownIdentifier) {
		t.Fatalf("Infer(ghost) error = %v, want unknown identifier", err)
	}
}

func TestInferApplication(t *testing.T) {
	cx := NewContext().Extend("f", typeOf(ast.Fun(ast.U(0), ast.U(0)))).Extend("a", universe(0))

	typ, err := Infer(ast.App(ast.Var("f"), ast.Var("a")), cx)
	if err != nil {
		t.Fatalf("Infer(f a) error: %v", err)
	}
	u, ok := typ.(*runtime.UniverseValue)
	if !ok || u.Level != 0 {
		t.Fatalf("Infer(f a) = %#v, want universe 0", typ)
	}
}

func TestInferApplicationOfNonFunction(t *testing.T) {
	cx := NewContext().Extend("a", universe(0))
	_, err := Infer(ast.App(ast.Var("a"), ast.U(0)), cx)
	if !errors.Is(err, ErrNotAFunction) {
		t.Fatalf("Infer(a U0) error = %v, want not a function", err)
	}

	// A head that cannot be inferred keeps its own failure class: the head
	// fails before the function-type requirement is reached.
	_, err = Infer(ast.App(ast.U(0), ast.Var("z")), NewContext())
	if !errors.Is(err, ErrCannotInfer) {
		t.Fatalf("Infer(U0 z) error = %v, want cannot infer", err)
	}
}

func TestInferRejectsCheckableOnlyForms(t *testing.T) {
	for _, e := range []ast.Expr{
		ast.Lam("x", ast.Var("x")),
		ast.Fun(ast.U(0), ast.U(0)),
		ast.U(0),
	} {
		if _, err := Infer(e, NewContext()); !errors.Is(err, ErrCannotInfer) {
			t.Fatalf("Infer(%s) error = %v, want cannot infer", ast.Sprint(e), err)
		}
	}
}

func TestInferLet(t *testing.T) {
	cx := NewContext().Extend("n", universe(0))
	typ, err := Infer(ast.Let("m", ast.Var("n"), ast.Var("m")), cx)
	if err != nil {
		t.Fatalf("Infer(let m = n in m) error: %v", err)
	}
	u, ok := typ.(*runtime.UniverseValue)
	if !ok || u.Level != 0 {
		t.Fatalf("Infer(let m = n in m) = %#v, want universe 0", typ)
	}

	// An uninferable bound value fails the whole let.
	_, err = Infer(ast.Let("m", ast.Lam("x", ast.Var("x")), ast.Var("m")), cx)
	if !errors.Is(err, ErrCannotInfer) {
		t.Fatalf("Infer(let m = \\x. x in m) error = %v, want cannot infer", err)
	}
}

func TestCheckFirstFailureWins(t *testing.T) {
	// The argument fails before the codomain comparison happens.
	cx := NewContext().Extend("f", typeOf(ast.Fun(ast.U(0), ast.U(0))))
	err := Check(ast.App(ast.Var("f"), ast.Var("ghost")), universe(0), cx)
	if !errors.Is(err, ErrUnknownIdentifier) {
		t.Fatalf("error = %v, want unknown identifier", err)
	}
}

func TestErrorMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"unknown identifier", func() error { _, err := Infer(ast.Var("g"), NewContext()); return err }(), "unknown identifier"},
		{"cannot infer", func() error { _, err := Infer(ast.U(0), NewContext()); return err }(), "could not infer type"},
		{"universe level", Check(ast.U(1), universe(1), NewContext()), "universe level out of range"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if tc.err == nil || !strings.Contains(tc.err.Error(), tc.want) {
				t.Fatalf("error = %v, want substring %q", tc.err, tc.want)
			}
			if !strings.HasPrefix(tc.err.Error(), "typechecker: ") {
				t.Fatalf("error = %v, want typechecker prefix", tc.err)
			}
		})
	}
}
