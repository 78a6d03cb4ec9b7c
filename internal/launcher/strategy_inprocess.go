// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build windows || (linux && (amd64 || arm64))

package launcher

// DefaultStrategy creates the VM in process.
const DefaultStrategy = StrategyInProcess
