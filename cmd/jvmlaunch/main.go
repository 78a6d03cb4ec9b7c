// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Command jvmlaunch starts the Java application bundled next to it as
// described by its config.json.
package main

import (
	"context"
	"os"
	"runtime"

	"github.com/aibor/jvmlaunch/internal/cmd"
)

func init() {
	// Keep the main goroutine on the main thread. On darwin, the main thread
	// must run the event loop.
	runtime.LockOSThread()
}

func main() {
	cfg := cmd.IO{
		Stderr: os.Stderr,
	}

	os.Exit(cmd.Run(context.Background(), os.Args, cfg))
}
