// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import (
	"fmt"
	"os"
)

// The runtime uses _NSGetExecutablePath for this on darwin.
func executablePath(_ string) (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("process image path: %w", err)
	}

	return path, nil
}
