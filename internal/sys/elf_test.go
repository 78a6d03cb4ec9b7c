// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys_test

import (
	"debug/elf"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/aibor/jvmlaunch/internal/sys"
	"github.com/stretchr/testify/require"
)

func TestValidateELF(t *testing.T) {
	header := func(
		class elf.Class,
		machine elf.Machine,
		abi elf.OSABI,
	) elf.FileHeader {
		return elf.FileHeader{
			Class:   class,
			Machine: machine,
			OSABI:   abi,
		}
	}

	tests := []struct {
		name        string
		header      elf.FileHeader
		arch        sys.Arch
		expectedErr error
	}{
		{
			name:   "amd64",
			header: header(elf.ELFCLASS64, elf.EM_X86_64, elf.ELFOSABI_NONE),
			arch:   sys.AMD64,
		},
		{
			name:   "386",
			header: header(elf.ELFCLASS32, elf.EM_386, elf.ELFOSABI_LINUX),
			arch:   sys.I386,
		},
		{
			name:   "arm64",
			header: header(elf.ELFCLASS64, elf.EM_AARCH64, elf.ELFOSABI_NONE),
			arch:   sys.ARM64,
		},
		{
			name:        "32 bit runtime on amd64",
			header:      header(elf.ELFCLASS32, elf.EM_386, elf.ELFOSABI_NONE),
			arch:        sys.AMD64,
			expectedErr: sys.ErrMachineNotSupported,
		},
		{
			name:        "arm64 runtime on amd64",
			header:      header(elf.ELFCLASS64, elf.EM_AARCH64, elf.ELFOSABI_NONE),
			arch:        sys.AMD64,
			expectedErr: sys.ErrMachineNotSupported,
		},
		{
			name:        "unknown machine",
			header:      header(elf.ELFCLASS64, elf.EM_RISCV, elf.ELFOSABI_NONE),
			arch:        sys.AMD64,
			expectedErr: sys.ErrMachineNotSupported,
		},
		{
			name:        "unsupported abi",
			header:      header(elf.ELFCLASS64, elf.EM_X86_64, elf.ELFOSABI_FREEBSD),
			arch:        sys.AMD64,
			expectedErr: sys.ErrOSABINotSupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sys.ValidateELF(tt.header, tt.arch)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestValidateELFFile(t *testing.T) {
	t.Run("not elf", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "libjvm.so")
		require.NoError(t, os.WriteFile(path, []byte("not elf"), 0o600))

		require.NoError(t, sys.ValidateELFFile(path, sys.Native))
	})

	t.Run("missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "libjvm.so")
		require.NoError(t, sys.ValidateELFFile(path, sys.Native))
	})

	t.Run("own executable", func(t *testing.T) {
		if runtime.GOOS != "linux" {
			t.Skip("test executable is not an ELF file")
		}

		if _, err := sys.Native.JREDirName(); err != nil {
			t.Skipf("architecture %s not supported", sys.Native)
		}

		self, err := os.Executable()
		require.NoError(t, err)

		require.NoError(t, sys.ValidateELFFile(self, sys.Native))
	})
}
