// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build windows || ((darwin || linux) && (amd64 || arm64))

package launcher

import (
	"log/slog"

	"github.com/aibor/jvmlaunch/internal/jni"
	"github.com/aibor/jvmlaunch/internal/sys"
)

// LoadJNIRuntime loads the runtime library bundled in the given directory.
func LoadJNIRuntime(dir string) (Runtime, error) {
	path := sys.RuntimeLibrary(dir)

	slog.Info("Load runtime library", slog.String("path", path))

	err := sys.ValidateRuntimeLibrary(path)
	if err != nil {
		return nil, &jni.LoadError{Path: path, Err: err}
	}

	lib, err := jni.Load(path)
	if err != nil {
		return nil, err
	}

	return &jniRuntime{lib: lib}, nil
}

type jniRuntime struct {
	lib *jni.Library
}

func (r *jniRuntime) CreateVM(options []string) (VM, error) {
	vm, err := r.lib.CreateVM(options)
	if err != nil {
		return nil, err
	}

	return vm, nil
}
