// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build windows || ((darwin || linux) && (amd64 || arm64))

package jni

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Library is a loaded runtime library with its resolved invocation API
// functions.
type Library struct {
	Path string

	createJavaVM             uintptr
	getDefaultJavaVMInitArgs uintptr
}

// Load loads the runtime library at the given path and resolves the
// invocation API functions.
//
// JNI_CreateJavaVM is required everywhere. JNI_GetDefaultJavaVMInitArgs is
// required on windows only. Failures are returned as [*LoadError].
func Load(path string) (*Library, error) {
	handle, err := openLibrary(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	lib := &Library{Path: path}

	lib.createJavaVM, err = lookupSymbol(handle, SymbolCreateJavaVM)
	if err != nil {
		return nil, &LoadError{
			Path:   path,
			Symbol: SymbolCreateJavaVM,
			Err:    err,
		}
	}

	lib.getDefaultJavaVMInitArgs, err = lookupSymbol(
		handle,
		SymbolGetDefaultJavaVMInitArgs,
	)
	if err != nil && requireDefaultInitArgs {
		return nil, &LoadError{
			Path:   path,
			Symbol: SymbolGetDefaultJavaVMInitArgs,
			Err:    err,
		}
	}

	return lib, nil
}

// SupportsVersion asks the runtime if it supports the given JNI version.
//
// If JNI_GetDefaultJavaVMInitArgs is not available, it returns true and
// leaves the decision to JNI_CreateJavaVM.
func (l *Library) SupportsVersion(version int32) bool {
	if l.getDefaultJavaVMInitArgs == 0 {
		return true
	}

	args := &javaVMInitArgs{version: version}

	ret, _, _ := purego.SyscallN(
		l.getDefaultJavaVMInitArgs,
		uintptr(unsafe.Pointer(args)),
	)

	return resultOf(ret) == ResultOK
}

// CreateVM creates a Java VM with the given options. The options are passed
// in order and unrecognized options are an error.
//
// The calling goroutine must be locked to its OS thread until the returned
// [VM] is destroyed. Only one VM can exist per process.
func (l *Library) CreateVM(options []string) (*VM, error) {
	if !l.SupportsVersion(Version1_6) {
		return nil, ErrVersionNotSupported
	}

	args, err := newInitArgs(Version1_6, options)
	if err != nil {
		return nil, err
	}

	var vm, env unsafe.Pointer

	ret, _, _ := purego.SyscallN(
		l.createJavaVM,
		uintptr(unsafe.Pointer(&vm)),
		uintptr(unsafe.Pointer(&env)),
		uintptr(unsafe.Pointer(&args.raw)),
	)

	if res := resultOf(ret); res < 0 {
		args.release()
		return nil, &ResultError{Func: SymbolCreateJavaVM, Code: res}
	}

	return &VM{
		ptr:  vm,
		env:  &Env{ptr: env},
		args: args,
	}, nil
}
