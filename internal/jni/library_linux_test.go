// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build amd64 || arm64

package jni_test

import (
	"path/filepath"
	"testing"

	"github.com/aibor/jvmlaunch/internal/jni"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jre", "lib", "server", "libjvm.so")

	lib, err := jni.Load(path)
	require.ErrorIs(t, err, &jni.LoadError{})
	assert.Nil(t, lib)

	var loadErr *jni.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.Path)
	assert.Empty(t, loadErr.Symbol)
	assert.Contains(t, loadErr.Error(), path)
}

func TestLoad_MissingSymbol(t *testing.T) {
	const libc = "libc.so.6"

	_, err := jni.Load(libc)
	require.ErrorIs(t, err, &jni.LoadError{})

	var loadErr *jni.LoadError
	require.ErrorAs(t, err, &loadErr)

	if loadErr.Symbol == "" {
		t.Skipf("%s not available: %v", libc, err)
	}

	assert.Equal(t, jni.SymbolCreateJavaVM, loadErr.Symbol)
}
