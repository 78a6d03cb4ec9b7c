// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package launcher starts the Java application described by a
// [config.LaunchConfig].
//
// Two strategies exist. [StrategyInProcess] loads the runtime library into
// the current process and calls the main method via JNI. [StrategyProcessReplace]
// replaces the current process image with the bundled java executable.
package launcher
