// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !darwin

package mainthread

// Run runs fn synchronously. No platform requires an event loop on the main
// thread.
func Run(fn func() error) error {
	return fn()
}
