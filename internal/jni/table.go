// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build windows || ((darwin || linux) && (amd64 || arm64))

package jni

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// Indexes into the JNINativeInterface_ function table as laid out in jni.h.
const (
	fnGetVersion            = 4
	fnFindClass             = 6
	fnExceptionDescribe     = 16
	fnDeleteLocalRef        = 23
	fnGetStaticMethodID     = 113
	fnCallStaticVoidMethodA = 143
	fnNewStringUTF          = 167
	fnNewObjectArray        = 172
	fnSetObjectArrayElement = 174
	fnExceptionCheck        = 228

	envTableSize = 229
)

// Index into the JNIInvokeInterface_ function table.
const fnDestroyJavaVM = 3

// function returns the entry of the function table the given structure
// pointer points to. Both JavaVM and JNIEnv start with a pointer to their
// function table.
func function(ptr unsafe.Pointer, idx int) uintptr {
	table := *(*unsafe.Pointer)(ptr)
	return *(*uintptr)(unsafe.Add(table, uintptr(idx)*unsafe.Sizeof(uintptr(0))))
}

// call calls the function at idx of the function table of ptr. The structure
// pointer is passed as first argument, like the C++ wrappers of jni.h do.
func call(ptr unsafe.Pointer, idx int, args ...uintptr) uintptr {
	ret, _, _ := purego.SyscallN(
		function(ptr, idx),
		append([]uintptr{uintptr(ptr)}, args...)...,
	)

	return ret
}
