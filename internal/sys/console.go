// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ConsoleFlag requests a console window for diagnostic output on windows.
const ConsoleFlag = "--console"

// Console holds the standard streams of an attached console.
type Console struct {
	In  *os.File
	Out *os.File
}

// ConsoleRequested reports whether any of the given arguments is the
// [ConsoleFlag]. The comparison is case-insensitive.
func ConsoleRequested(args []string) bool {
	for _, arg := range args {
		if strings.EqualFold(arg, ConsoleFlag) {
			return true
		}
	}

	return false
}

// WaitForEnter prompts on out and blocks until a line is read from in.
func WaitForEnter(in io.Reader, out io.Writer) {
	fmt.Fprint(out, "Press ENTER key to exit.")

	_, _ = bufio.NewReader(in).ReadString('\n')
}
