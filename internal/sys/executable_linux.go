// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"os"
)

const procSelfExe = "/proc/self/exe"

func executablePath(_ string) (string, error) {
	path, err := os.Readlink(procSelfExe)
	if err != nil {
		return "", fmt.Errorf("read link: %w", err)
	}

	return path, nil
}
