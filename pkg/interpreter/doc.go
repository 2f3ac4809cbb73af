// Package interpreter normalizes terms by evaluation. Evaluate reduces a
// term to a semantic value under an environment, representing unbound
// variables as neutrals instead of failing; Quote reads a value back as
// syntax, unfolding closures with fresh variables. Composing the two yields
// beta-normal forms and gives the typechecker its notion of type equality.
package interpreter
