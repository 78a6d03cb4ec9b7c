// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package jni loads a Java runtime's shared library and drives it via the
// JNI invocation API without cgo.
//
// Native functions are resolved with [github.com/ebitengine/purego] on unix
// platforms and the windows DLL loader on windows. Calls into the runtime go
// through the function tables of the JavaVM and JNIEnv structures.
//
// A JNIEnv is only valid on the OS thread that created it. Callers must lock
// their goroutine to its thread with [runtime.LockOSThread] for the whole
// lifetime of a [VM].
//
// The runtime can be driven on windows and on darwin and linux for amd64 and
// arm64. Other platforms only get the names and error types.
package jni
