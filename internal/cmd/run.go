// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/aibor/jvmlaunch/internal/config"
	"github.com/aibor/jvmlaunch/internal/exitcode"
	"github.com/aibor/jvmlaunch/internal/jni"
	"github.com/aibor/jvmlaunch/internal/launcher"
	"github.com/aibor/jvmlaunch/internal/mainthread"
	"github.com/aibor/jvmlaunch/internal/sys"
)

// IO provides output details for the command.
type IO struct {
	Stderr io.Writer
}

func run(ctx context.Context, args []string, env Env) error {
	var argv0 string
	if len(args) > 0 {
		argv0 = args[0]
	}

	dir := sys.ExecutableDir(argv0)
	if dir == sys.CurrentDir {
		slog.Debug("Executable directory unknown, using working directory")
	}

	return launch(ctx, dir, args, env, launcher.New())
}

func launch(
	ctx context.Context,
	dir string,
	args []string,
	env Env,
	l *launcher.Launcher,
) error {
	slog.Info("Read config", slog.String("path", config.Path(dir)))

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	slog.Info("Launch application",
		slog.String("jre", sys.JavaExecutable(dir)),
		slog.String("jar", cfg.Jar),
		slog.String("main_class", cfg.MainClass),
		slog.Any("vm_args", cfg.VMArgs),
	)

	spec := launcher.Spec{
		Dir:      dir,
		Config:   cfg,
		Args:     args,
		Strategy: env.Strategy,
	}

	return l.Launch(ctx, spec)
}

func handleRunError(err error) int {
	exitCode, isExitCode := exitcode.From(err)

	// The VM already printed the stack trace of the exception and a child
	// process reported on its own.
	if err != nil && !isExitCode && !errors.Is(err, jni.ErrUncaughtException) {
		slog.Error(err.Error())
	}

	return exitCode
}

// prepareConsole attaches a console if requested. The returned function
// waits for confirmation and must be called before the process exits.
func prepareConsole(args []string, level slog.Level) func() {
	if !sys.ConsoleRequested(args) {
		return func() {}
	}

	console, err := sys.AttachConsole()
	if err != nil {
		if !errors.Is(err, errors.ErrUnsupported) {
			slog.Warn("Failed to attach console", slog.Any("error", err))
		}

		return func() {}
	}

	setupLogging(console.Out, level)

	return func() {
		sys.WaitForEnter(console.In, console.Out)
	}
}

// Run is the main entry point for the bootstrapper. It returns the exit code
// for the process.
//
// On darwin, it must be called on the main thread.
func Run(ctx context.Context, args []string, cfg IO) int {
	setupLogging(cfg.Stderr, slog.LevelWarn)

	env, err := ParseEnv()
	if err != nil {
		return handleRunError(err)
	}

	setupLogging(cfg.Stderr, env.LogLevel)

	sys.SetDPIAware()

	waitForConsole := prepareConsole(args, env.LogLevel)
	defer waitForConsole()

	err = mainthread.Run(func() error {
		return run(ctx, args, env)
	})

	return handleRunError(err)
}
