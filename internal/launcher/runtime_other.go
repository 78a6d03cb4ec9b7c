// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !windows && !((darwin || linux) && (amd64 || arm64))

package launcher

import (
	"errors"

	"github.com/aibor/jvmlaunch/internal/jni"
	"github.com/aibor/jvmlaunch/internal/sys"
)

// LoadJNIRuntime fails, as the runtime can not be loaded without cgo on this
// platform. Use [StrategyProcessReplace].
func LoadJNIRuntime(dir string) (Runtime, error) {
	return nil, &jni.LoadError{
		Path: sys.RuntimeLibrary(dir),
		Err:  errors.ErrUnsupported,
	}
}
