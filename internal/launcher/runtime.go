// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

// Runtime creates Java VMs.
type Runtime interface {
	CreateVM(options []string) (VM, error)
}

// VM is a created Java VM.
type VM interface {
	InvokeMain(className string, args []string) error
	Destroy() error
}

// Loader loads the [Runtime] bundled in the given directory.
type Loader func(dir string) (Runtime, error)
