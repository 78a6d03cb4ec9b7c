// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import (
	"errors"
	"fmt"
)

const (
	// Success is the exit code of a completed launch.
	Success = 0
	// Failure is the exit code for any error that does not carry its own
	// exit code.
	Failure = 1
)

// Error is an exit code of a child process that is passed through as the exit
// code of the bootstrapper.
type Error int

func (e Error) Error() string {
	return fmt.Sprintf("child exited with code %d", int(e))
}

func (Error) Is(other error) bool {
	_, ok := other.(Error)
	return ok
}

// Code returns the exit code as basic int type.
func (e Error) Code() int {
	return int(e)
}

// From returns the exit code for the given error and whether the error
// carried an exit code of its own.
//
// A nil error is [Success]. An [Error] in the chain yields its [Error.Code].
// Any other error is [Failure].
func From(err error) (int, bool) {
	if err == nil {
		return Success, false
	}

	var exitErr Error
	if errors.As(err, &exitErr) {
		return exitErr.Code(), true
	}

	return Failure, false
}
