// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the entry point of the jvmlaunch bootstrapper. It
// handles environment options, logging, the windows console, and maps errors
// to exit codes.
//
// All process arguments are passed to the Java application unmodified.
package cmd
