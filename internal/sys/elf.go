// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"debug/elf"
	"fmt"
)

// ValidateELF validates that ELF attributes match the requested architecture.
func ValidateELF(hdr elf.FileHeader, arch Arch) error {
	switch hdr.OSABI {
	case elf.ELFOSABI_NONE, elf.ELFOSABI_LINUX:
		// supported, pass
	default:
		return fmt.Errorf("%w: %s", ErrOSABINotSupported, hdr.OSABI)
	}

	var archReq Arch

	switch {
	case hdr.Machine == elf.EM_X86_64 && hdr.Class == elf.ELFCLASS64:
		archReq = AMD64
	case hdr.Machine == elf.EM_386 && hdr.Class == elf.ELFCLASS32:
		archReq = I386
	case hdr.Machine == elf.EM_AARCH64 && hdr.Class == elf.ELFCLASS64:
		archReq = ARM64
	default:
		return fmt.Errorf("%w: %s %s", ErrMachineNotSupported, hdr.Class, hdr.Machine)
	}

	if archReq != arch {
		return fmt.Errorf(
			"%w: %s on %s",
			ErrMachineNotSupported,
			hdr.Machine,
			arch,
		)
	}

	return nil
}

// ValidateELFFile validates the ELF file at the given path with
// [ValidateELF]. Files that can not be read as ELF file are not an error, as
// they are left to the dynamic loader to report.
func ValidateELFFile(path string, arch Arch) error {
	file, err := elf.Open(path)
	if err != nil {
		return nil //nolint:nilerr
	}
	defer file.Close()

	return ValidateELF(file.FileHeader, arch)
}
