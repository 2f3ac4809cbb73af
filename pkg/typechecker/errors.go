package typechecker

import "errors"

// Failure classes. Diagnostics returned by Check and Infer wrap exactly one
// of these, so callers branch with errors.Is and print the wrapped message.
var (
	// ErrUnknownIdentifier reports a variable with no context entry.
	ErrUnknownIdentifier = errors.New("unknown identifier")

	// ErrNotAFunction reports an application whose head's type is not a
	// function type.
	ErrNotAFunction = errors.New("not a function")

	// ErrCannotInfer reports a term form whose type can only be checked,
	// never synthesized.
	ErrCannotInfer = errors.New("could not infer type")

	// ErrTypeMismatch reports an inferred type that is not alpha-equivalent
	// to the expected one.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUniverseLevel reports a universe checked against a universe that
	// does not strictly contain it.
	ErrUniverseLevel = errors.New("universe level out of range")
)
