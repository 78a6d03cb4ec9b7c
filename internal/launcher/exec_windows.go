// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"errors"
	"os"
	"os/exec"

	"github.com/aibor/jvmlaunch/internal/exitcode"
)

// execProcess runs the executable as child process with the standard streams
// of the current process, since windows can not replace the process image.
// A non-zero exit code of the child is returned as [exitcode.Error].
func execProcess(path string, argv []string, env []string) error {
	cmd := exec.Command(path, argv[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitcode.Error(exitErr.ExitCode())
		}

		return err
	}

	return nil
}
