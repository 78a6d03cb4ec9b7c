// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jni

import (
	"errors"
	"fmt"
	"syscall"

	"golang.org/x/sys/windows"
)

const requireDefaultInitArgs = true

func openLibrary(path string) (uintptr, error) {
	// Search the library's own directory for its dependencies instead of the
	// launcher's.
	handle, err := windows.LoadLibraryEx(
		path,
		0,
		windows.LOAD_WITH_ALTERED_SEARCH_PATH,
	)
	if err != nil {
		return 0, lastError(err)
	}

	return uintptr(handle), nil
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	addr, err := windows.GetProcAddress(windows.Handle(handle), name)
	if err != nil {
		return 0, lastError(err)
	}

	return addr, nil
}

// lastError prefixes system errors with their code as windows users know it
// from the system's message.
func lastError(err error) error {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return fmt.Errorf("Error code [%d]: %w", uint32(errno), err) //nolint:stylecheck
	}

	return err
}
