// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
)

const logPrefix = "jvmlaunch"

func setupLogging(writer io.Writer, level slog.Level) {
	handler := log.NewWithOptions(writer, log.Options{
		Prefix:          logPrefix,
		Level:           log.Level(level),
		ReportTimestamp: true,
		TimeFormat:      time.StampMicro,
	})

	slog.SetDefault(slog.New(handler))
}
