// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !unix && !windows

package launcher

import "errors"

func execProcess(_ string, _ []string, _ []string) error {
	return errors.ErrUnsupported
}
