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

func TestExecutableDir(t *testing.T) {
	self, err := os.Executable()
	require.NoError(t, err)

	expected := filepath.Dir(self)

	// argv0 is ignored on linux.
	for _, argv0 := range []string{"", "/some/other/binary", "relative"} {
		t.Run(argv0, func(t *testing.T) {
			actual := sys.ExecutableDir(argv0)

			assert.Equal(t, expected, actual)
			assert.True(t, filepath.IsAbs(actual), "must be absolute")
		})
	}
}
