// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "path/filepath"

const javaExecutableName = "java"

// RuntimeLibraryPaths returns the candidate paths of the bundled runtime
// library in preference order.
func RuntimeLibraryPaths(dir string, _ Arch) []string {
	return []string{
		filepath.Join(dir, JREDir, "lib", "server", "libjvm.dylib"),
	}
}

// ValidateRuntimeLibrary is left to the dynamic loader.
func ValidateRuntimeLibrary(_ string) error {
	return nil
}
