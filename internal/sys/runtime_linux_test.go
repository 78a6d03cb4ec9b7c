// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/jvmlaunch/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeLibraryPaths(t *testing.T) {
	tests := []struct {
		arch     sys.Arch
		expected []string
	}{
		{
			arch: sys.AMD64,
			expected: []string{
				"/app/jre/lib/amd64/server/libjvm.so",
				"/app/jre/lib/server/libjvm.so",
			},
		},
		{
			arch: sys.I386,
			expected: []string{
				"/app/jre/lib/i386/server/libjvm.so",
				"/app/jre/lib/server/libjvm.so",
			},
		},
		{
			arch: sys.ARM64,
			expected: []string{
				"/app/jre/lib/aarch64/server/libjvm.so",
				"/app/jre/lib/server/libjvm.so",
			},
		},
		{
			arch: sys.Arch("riscv64"),
			expected: []string{
				"/app/jre/lib/server/libjvm.so",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.arch.String(), func(t *testing.T) {
			actual := sys.RuntimeLibraryPaths("/app", tt.arch)
			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestRuntimeLibrary(t *testing.T) {
	paths := sys.RuntimeLibraryPaths("", sys.Native)

	t.Run("none present", func(t *testing.T) {
		dir := t.TempDir()

		actual := sys.RuntimeLibrary(dir)
		assert.Equal(t, filepath.Join(dir, paths[0]), actual)
	})

	t.Run("last present", func(t *testing.T) {
		dir := t.TempDir()
		last := filepath.Join(dir, paths[len(paths)-1])

		require.NoError(t, os.MkdirAll(filepath.Dir(last), 0o755))
		require.NoError(t, os.WriteFile(last, nil, 0o600))

		actual := sys.RuntimeLibrary(dir)
		assert.Equal(t, last, actual)
	})
}

func TestJavaExecutable(t *testing.T) {
	assert.Equal(t, "/app/jre/bin/java", sys.JavaExecutable("/app"))
}
