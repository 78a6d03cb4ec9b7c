// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

func executablePath(argv0 string) (string, error) {
	return AbsolutePath(argv0)
}
