package ast

// Term construction helpers. There is no surface syntax; these are the
// intended way to build terms in tests and embedding code.

func App(fn, arg Expr) *Application {
	return NewApplication(fn, arg)
}

func Fun(domain, codomain Expr) *FunctionType {
	return NewFunctionType(domain, codomain)
}

func Lam(param string, body Expr) *Lambda {
	return NewLambda(param, body)
}

func Let(name string, value, body Expr) *LetBinding {
	return NewLetBinding(name, value, body)
}

func U(level Level) *Universe {
	return NewUniverse(level)
}

func Var(name string) *Variable {
	return NewVariable(name)
}
