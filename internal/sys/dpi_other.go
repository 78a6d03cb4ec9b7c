// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !windows

package sys

// SetDPIAware does nothing outside of windows.
func SetDPIAware() {}
