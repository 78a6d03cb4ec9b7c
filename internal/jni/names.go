// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jni

import "strings"

// Symbols of the invocation API exported by the runtime library.
const (
	SymbolCreateJavaVM             = "JNI_CreateJavaVM"
	SymbolGetDefaultJavaVMInitArgs = "JNI_GetDefaultJavaVMInitArgs"
)

// Name and signature of the entry point method.
const (
	MainMethodName      = "main"
	MainMethodSignature = "([Ljava/lang/String;)V"
)

const stringClassName = "java/lang/String"

// BinaryName converts a fully qualified class name into the form FindClass
// expects. Names already separated by slashes are returned unchanged.
func BinaryName(className string) string {
	return strings.ReplaceAll(className, ".", "/")
}
