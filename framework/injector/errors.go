package injector

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMakeFailed is the sentinel wrapped by every error the injector can
// return from Make(). Use errors.Is(err, injector.ErrMakeFailed) to detect
// the family and errors.As to discriminate the kind.
var ErrMakeFailed = errors.New("failed to make instance")

// CircularReferenceError is returned when the resolution chain revisits an
// abstraction that is already being resolved.
type CircularReferenceError struct {
	Abstract string
	Chain    []string
}

func (e *CircularReferenceError) Error() string {
	if len(e.Chain) == 0 {
		return fmt.Sprintf("circular reference detected while resolving %q", e.Abstract)
	}
	return fmt.Sprintf(
		"circular reference detected while resolving %q (chain: %s)",
		e.Abstract, strings.Join(e.Chain, " -> "),
	)
}

func (e *CircularReferenceError) Unwrap() error { return ErrMakeFailed }

// NotInstantiableError is returned when a resolved class is a known
// interface or abstract type with no binding to a concrete implementation.
type NotInstantiableError struct {
	Class string
}

func (e *NotInstantiableError) Error() string {
	return fmt.Sprintf("%q is not instantiable; bind it to a concrete class", e.Class)
}

func (e *NotInstantiableError) Unwrap() error { return ErrMakeFailed }

// UnreflectableClassError is returned when an identifier has no registered
// constructor and is not a declared interface — the injector knows nothing
// about it.
type UnreflectableClassError struct {
	Class string
}

func (e *UnreflectableClassError) Error() string {
	return fmt.Sprintf("no constructor registered for %q", e.Class)
}

func (e *UnreflectableClassError) Unwrap() error { return ErrMakeFailed }

// UnresolvedArgumentError is returned when a value parameter cannot be
// satisfied by call-site arguments, argument bindings, or a default.
type UnresolvedArgumentError struct {
	Class string
	Param string
}

func (e *UnresolvedArgumentError) Error() string {
	return fmt.Sprintf("could not resolve argument %q while constructing %q", e.Param, e.Class)
}

func (e *UnresolvedArgumentError) Unwrap() error { return ErrMakeFailed }

// UninstantiatedSharedInstanceError reports an internal consistency fault: a
// shared slot was read as populated but held no instance. It should be
// unreachable; seeing it means a bug in slot management.
type UninstantiatedSharedInstanceError struct {
	Class string
}

func (e *UninstantiatedSharedInstanceError) Error() string {
	return fmt.Sprintf("shared instance for %q was requested but never instantiated", e.Class)
}

func (e *UninstantiatedSharedInstanceError) Unwrap() error { return ErrMakeFailed }
