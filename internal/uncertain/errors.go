package uncertain

import "errors"

// Sentinel errors returned by constructors, operators and the elementary
// functions in umath. Callers match them with errors.Is.
var (
	// ErrInvalidStdDev reports a negative standard deviation passed to a
	// constructor or setter.
	ErrInvalidStdDev = errors.New("standard deviation cannot be negative")

	// ErrDivisionByZero reports a divisor whose nominal value is exactly zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDomain reports an elementary function argument outside its valid
	// domain, or a point where the derivative is undefined even though the
	// function value exists.
	ErrDomain = errors.New("math domain error")

	// ErrUnknownVariable reports a derivative-map lookup for an ID the
	// registry never issued. This is a programming-contract violation and is
	// not retried or absorbed anywhere in the package.
	ErrUnknownVariable = errors.New("unknown variable id in registry")
)
