// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux && !darwin && !windows

package sys

import (
	"fmt"
	"os"
)

func executablePath(_ string) (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("executable: %w", err)
	}

	return path, nil
}
