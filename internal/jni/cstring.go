// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jni

import (
	"strings"
	"unsafe"
)

// cString returns the given string as NUL terminated byte slice.
func cString(s string) ([]byte, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return nil, ErrNulByte
	}

	b := make([]byte, len(s)+1)
	copy(b, s)

	return b, nil
}

// goString copies the NUL terminated string at ptr.
func goString(ptr *byte) string {
	if ptr == nil {
		return ""
	}

	var length int
	for *(*byte)(unsafe.Add(unsafe.Pointer(ptr), length)) != 0 {
		length++
	}

	return string(unsafe.Slice(ptr, length))
}
