// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

var (
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	procFreeConsole  = kernel32.NewProc("FreeConsole")
	procAllocConsole = kernel32.NewProc("AllocConsole")
)

// AttachConsole replaces the console of the process with a new one and binds
// the standard streams to it.
//
// The standard handles of the process are updated as well, so native code
// like the runtime writes into the new console.
func AttachConsole() (*Console, error) {
	_, _, _ = procFreeConsole.Call()

	ret, _, err := procAllocConsole.Call()
	if ret == 0 {
		return nil, fmt.Errorf("allocate console: %w", err)
	}

	in, err := os.OpenFile("CONIN$", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("open console input: %w", err)
	}

	out, err := os.OpenFile("CONOUT$", os.O_RDWR, 0)
	if err != nil {
		_ = in.Close()
		return nil, fmt.Errorf("open console output: %w", err)
	}

	handles := []struct {
		std  uint32
		file *os.File
	}{
		{windows.STD_INPUT_HANDLE, in},
		{windows.STD_OUTPUT_HANDLE, out},
		{windows.STD_ERROR_HANDLE, out},
	}

	for _, h := range handles {
		err := windows.SetStdHandle(h.std, windows.Handle(h.file.Fd()))
		if err != nil {
			return nil, fmt.Errorf("set std handle: %w", err)
		}
	}

	os.Stdin = in
	os.Stdout = out
	os.Stderr = out

	return &Console{In: in, Out: out}, nil
}
