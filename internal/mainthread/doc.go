// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package mainthread runs work while keeping the main OS thread available for
// the platform's event loop.
//
// The caller must lock the main goroutine to the main thread during
// initialization, see [runtime.LockOSThread].
package mainthread
