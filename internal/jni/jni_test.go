// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jni_test

import (
	"testing"

	"github.com/aibor/jvmlaunch/internal/jni"
	"github.com/stretchr/testify/assert"
)

func TestBinaryName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			input:    "Main",
			expected: "Main",
		},
		{
			input:    "com.example.Main",
			expected: "com/example/Main",
		},
		{
			input:    "com/example/Main",
			expected: "com/example/Main",
		},
		{
			input:    "com.example.Outer$Inner",
			expected: "com/example/Outer$Inner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, jni.BinaryName(tt.input))
		})
	}
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "success", jni.ResultOK.String())
	assert.Equal(t, "VM already created", jni.ResultExists.String())
	assert.Equal(t, "result -42", jni.Result(-42).String())
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		target   error
		expected string
	}{
		{
			name: "load error",
			err: &jni.LoadError{
				Path: "/app/jre/lib/server/libjvm.so",
				Err:  assert.AnError,
			},
			target: &jni.LoadError{},
			expected: "load /app/jre/lib/server/libjvm.so: " +
				"assert.AnError general error for testing",
		},
		{
			name: "load error symbol",
			err: &jni.LoadError{
				Path:   "libjvm.so",
				Symbol: jni.SymbolCreateJavaVM,
				Err:    assert.AnError,
			},
			target: &jni.LoadError{},
			expected: "load libjvm.so: symbol JNI_CreateJavaVM: " +
				"assert.AnError general error for testing",
		},
		{
			name: "result error",
			err: &jni.ResultError{
				Func: jni.SymbolCreateJavaVM,
				Code: jni.ResultNoMemory,
			},
			target:   &jni.ResultError{},
			expected: "JNI_CreateJavaVM: not enough memory (-4)",
		},
		{
			name: "lookup error",
			err: &jni.LookupError{
				Kind: jni.LookupClass,
				Name: "com.example.Main",
			},
			target:   &jni.LookupError{},
			expected: "class not found: com.example.Main",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.target)
			assert.NotErrorIs(t, assert.AnError, tt.target)
		})
	}
}
