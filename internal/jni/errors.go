// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jni

import (
	"errors"
	"fmt"
)

var (
	// ErrVersionNotSupported is returned if the runtime does not support
	// [Version1_6].
	ErrVersionNotSupported = errors.New("JNI version not supported")

	// ErrNulByte is returned if a string passed to the runtime contains a NUL
	// byte.
	ErrNulByte = errors.New("string contains NUL byte")

	// ErrAllocation is returned if the runtime fails to allocate an object.
	ErrAllocation = errors.New("allocation failed")

	// ErrUncaughtException is returned if the main method terminated with an
	// exception.
	ErrUncaughtException = errors.New("uncaught exception in main")
)

// LoadError is returned if the runtime library can not be loaded or a
// required symbol is missing.
type LoadError struct {
	Path   string
	Symbol string
	Err    error
}

// Error implements the [error] interface.
func (e *LoadError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("load %s: symbol %s: %v", e.Path, e.Symbol, e.Err)
	}

	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*LoadError) Is(other error) bool {
	_, ok := other.(*LoadError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// ResultError is returned if an invocation API function returns a result other
// than [ResultOK].
type ResultError struct {
	Func string
	Code Result
}

// Error implements the [error] interface.
func (e *ResultError) Error() string {
	return fmt.Sprintf("%s: %s (%d)", e.Func, e.Code, int32(e.Code))
}

// Is implements the [errors.Is] interface.
func (*ResultError) Is(other error) bool {
	_, ok := other.(*ResultError)
	return ok
}

// LookupKind is the kind of item a [LookupError] is about.
type LookupKind string

// Kinds of items looked up in the runtime.
const (
	LookupClass  LookupKind = "class"
	LookupMethod LookupKind = "method"
)

// LookupError is returned if a class or method can not be resolved.
type LookupError struct {
	Kind LookupKind
	// Name is the class name or, for methods, "<class>.<method><signature>".
	Name string
}

// Error implements the [error] interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Name)
}

// Is implements the [errors.Is] interface.
func (*LookupError) Is(other error) bool {
	_, ok := other.(*LookupError)
	return ok
}
