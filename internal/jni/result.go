// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jni

import "strconv"

// Version1_6 is the JNI version requested from the runtime.
const Version1_6 int32 = 0x00010006

// Result is a return code of the JNI invocation API.
type Result int32

// Result codes as defined by jni.h.
const (
	ResultOK       Result = 0
	ResultErr      Result = -1
	ResultDetached Result = -2
	ResultVersion  Result = -3
	ResultNoMemory Result = -4
	ResultExists   Result = -5
	ResultInvalid  Result = -6
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "success"
	case ResultErr:
		return "unknown error"
	case ResultDetached:
		return "thread detached from the VM"
	case ResultVersion:
		return "JNI version error"
	case ResultNoMemory:
		return "not enough memory"
	case ResultExists:
		return "VM already created"
	case ResultInvalid:
		return "invalid arguments"
	default:
		return "result " + strconv.Itoa(int(r))
	}
}

// resultOf converts the raw return register into a [Result].
func resultOf(r uintptr) Result {
	return Result(int32(r)) //nolint:gosec
}
