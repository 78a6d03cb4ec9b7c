// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build (darwin || linux) && (amd64 || arm64)

package jni

import (
	"github.com/ebitengine/purego"
)

const requireDefaultInitArgs = false

func openLibrary(path string) (uintptr, error) {
	// Errors carry the dlerror message.
	return purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL) //nolint:wrapcheck
}

func lookupSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name) //nolint:wrapcheck
}
