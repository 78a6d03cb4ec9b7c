// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "path/filepath"

// CurrentDir is returned by [ExecutableDir] if the executable path can not be
// determined.
const CurrentDir = "."

// ExecutableDir returns the absolute directory the running executable is
// located in.
//
// How the executable is determined depends on the OS. On windows the given
// argv0 is used, while other platforms ask the OS and ignore it. If the path
// can not be determined, [CurrentDir] is returned.
func ExecutableDir(argv0 string) string {
	path, err := executablePath(argv0)
	if err != nil {
		return CurrentDir
	}

	return filepath.Dir(path)
}
