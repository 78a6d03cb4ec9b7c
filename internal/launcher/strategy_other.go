// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !darwin && !windows && !(linux && (amd64 || arm64))

package launcher

// DefaultStrategy replaces the process where the runtime library can not be
// loaded in process.
const DefaultStrategy = StrategyProcessReplace
