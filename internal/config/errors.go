// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import "errors"

var (
	// ErrNotFound is returned if the configuration file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrMalformed is returned if the configuration file can not be decoded.
	ErrMalformed = errors.New("malformed content")

	// ErrMissingField is returned if a required field is missing or empty.
	ErrMissingField = errors.New("required field missing")
)

// Error wraps any error that occurs while loading the configuration file.
type Error struct {
	Path  string
	Field string
	Err   error
}

// Error implements the [error] interface.
func (e *Error) Error() string {
	msg := "config " + e.Path + ": "
	if e.Field != "" {
		msg += e.Field + ": "
	}

	return msg + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*Error) Is(other error) bool {
	_, ok := other.(*Error)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *Error) Unwrap() error {
	return e.Err
}
