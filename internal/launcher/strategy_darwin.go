// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

// DefaultStrategy replaces the process on darwin. The JVM needs the main
// thread for its own AppKit run loop there.
const DefaultStrategy = StrategyProcessReplace
