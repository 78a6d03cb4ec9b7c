// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !windows

package sys

import "errors"

// AttachConsole is only supported on windows.
func AttachConsole() (*Console, error) {
	return nil, errors.ErrUnsupported
}
