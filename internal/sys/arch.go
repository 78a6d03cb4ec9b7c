// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "runtime"

// Arch is a CPU architecture as named by GOARCH.
type Arch string

// Architectures a bundled runtime layout is known for.
const (
	AMD64 Arch = "amd64"
	I386  Arch = "386"
	ARM64 Arch = "arm64"
)

// Native is the architecture of the running executable.
const Native Arch = Arch(runtime.GOARCH)

func (a Arch) String() string {
	return string(a)
}

// JREDirName returns the name the bundled runtime uses for the architecture
// in its "lib" directory on linux.
func (a Arch) JREDirName() (string, error) {
	switch a {
	case AMD64:
		return "amd64", nil
	case I386:
		return "i386", nil
	case ARM64:
		return "aarch64", nil
	default:
		return "", ErrArchNotSupported
	}
}
