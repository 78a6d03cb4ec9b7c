// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "path/filepath"

const javaExecutableName = "java"

// RuntimeLibraryPaths returns the candidate paths of the bundled runtime
// library for the given architecture in preference order.
//
// The architecture specific directory is used by Java 8 and earlier runtimes.
// Later runtimes dropped it.
func RuntimeLibraryPaths(dir string, arch Arch) []string {
	var paths []string

	archDir, err := arch.JREDirName()
	if err == nil {
		paths = append(paths,
			filepath.Join(dir, JREDir, "lib", archDir, "server", "libjvm.so"))
	}

	return append(paths,
		filepath.Join(dir, JREDir, "lib", "server", "libjvm.so"))
}

// ValidateRuntimeLibrary checks that the runtime library at path matches the
// architecture of the running executable.
func ValidateRuntimeLibrary(path string) error {
	return ValidateELFFile(path, Native)
}
