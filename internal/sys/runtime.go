// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// JREDir is the directory of the bundled runtime relative to the executable
// directory.
const JREDir = "jre"

// JavaExecutable returns the path of the bundled runtime's command line
// executable.
func JavaExecutable(dir string) string {
	return filepath.Join(dir, JREDir, "bin", javaExecutableName)
}

// RuntimeLibrary returns the path of the bundled runtime's shared library.
//
// The candidates returned by [RuntimeLibraryPaths] are tried in order and the
// first one present on disk is returned. If none is present, the first
// candidate is returned so the caller fails with a meaningful path.
func RuntimeLibrary(dir string) string {
	return firstPresent(RuntimeLibraryPaths(dir, Native))
}

func firstPresent(paths []string) string {
	for _, path := range paths {
		_, err := os.Stat(path)
		if err == nil {
			return path
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return path
		}
	}

	return paths[0]
}
