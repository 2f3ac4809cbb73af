// Package typechecker implements bidirectional typing over evaluated types.
// Check validates a term against an expected type and Infer synthesizes a
// type where the form admits it; both work on semantic values, comparing
// types by quoting them back to syntax and testing alpha-equivalence.
// Failures are classified by sentinel errors usable with errors.Is.
package typechecker
