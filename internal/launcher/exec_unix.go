// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package launcher

import "golang.org/x/sys/unix"

// execProcess replaces the current process image. It only returns on
// failure.
func execProcess(path string, argv []string, env []string) error {
	return unix.Exec(path, argv, env)
}
