// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "errors"

var (
	// ErrEmptyPath is returned if an empty path is given.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrArchNotSupported is returned if there is no bundled runtime layout
	// known for the architecture.
	ErrArchNotSupported = errors.New("architecture not supported")

	// ErrNotRegularFile is returned if a path exists but is not a regular
	// file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrOSABINotSupported is returned if the OS ABI of an ELF file is not
	// supported.
	ErrOSABINotSupported = errors.New("OSABI not supported")

	// ErrMachineNotSupported is returned if the machine type of an ELF file
	// does not match the architecture.
	ErrMachineNotSupported = errors.New("machine type not supported")
)
