// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package sys

import "golang.org/x/sys/windows"

const processSystemDPIAware = 1

var (
	user32                     = windows.NewLazySystemDLL("user32.dll")
	procSetProcessDPIAware     = user32.NewProc("SetProcessDPIAware")
	shcore                     = windows.NewLazySystemDLL("shcore.dll")
	procSetProcessDpiAwareness = shcore.NewProc("SetProcessDpiAwareness")
)

// SetDPIAware marks the process as system DPI aware, so windows does not
// scale the hosted application's windows.
//
// SetProcessDpiAwareness is preferred, SetProcessDPIAware is the fallback for
// systems without shcore.dll.
func SetDPIAware() {
	if procSetProcessDpiAwareness.Find() == nil {
		_, _, _ = procSetProcessDpiAwareness.Call(processSystemDPIAware)
		return
	}

	if procSetProcessDPIAware.Find() == nil {
		_, _, _ = procSetProcessDPIAware.Call()
	}
}
