// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/aibor/jvmlaunch/internal/config"
	"github.com/aibor/jvmlaunch/internal/sys"
)

// Executor replaces the current process with the executable at path.
type Executor func(path string, argv []string, env []string) error

// Spec describes a single launch.
type Spec struct {
	// Dir is the directory of the bootstrapper executable. It contains the
	// bundled runtime and the application jar.
	Dir string

	Config config.LaunchConfig

	// Args are the process arguments including the program name. They are
	// passed to the main method unmodified.
	Args []string

	Strategy Strategy
}

// Launcher launches Java applications.
type Launcher struct {
	LoadRuntime Loader
	Exec        Executor
	Chdir       func(dir string) error
	Environ     func() []string
}

// New returns a [Launcher] operating on the real runtime and process.
func New() *Launcher {
	return &Launcher{
		LoadRuntime: LoadJNIRuntime,
		Exec:        execProcess,
		Chdir:       os.Chdir,
		Environ:     os.Environ,
	}
}

// Launch launches the application as described by the given [Spec]. It blocks
// until the application terminated.
//
// The in-process strategy must be run on a goroutine that is free to be
// locked to its OS thread.
func (l *Launcher) Launch(ctx context.Context, spec Spec) error {
	err := spec.Config.Validate()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	jarPath := spec.Config.JarPath(spec.Dir)

	slog.Debug("Launch",
		slog.String("strategy", string(spec.Strategy)),
		slog.String("jar", jarPath),
		slog.String("main_class", spec.Config.MainClass),
		slog.Any("vm_args", spec.Config.VMArgs),
	)

	switch spec.Strategy {
	case StrategyInProcess:
		return l.launchInProcess(ctx, spec, jarPath)
	case StrategyProcessReplace:
		return l.replaceProcess(ctx, spec, jarPath)
	default:
		return fmt.Errorf("%w: %q", ErrStrategyInvalid, string(spec.Strategy))
	}
}

func (l *Launcher) launchInProcess(
	ctx context.Context,
	spec Spec,
	jarPath string,
) (err error) {
	options := InitOptions(jarPath, spec.Config.VMArgs)

	rt, err := l.LoadRuntime(spec.Dir)
	if err != nil {
		return fmt.Errorf("load runtime: %w", err)
	}

	l.changeDir(spec.Dir)

	err = ctx.Err()
	if err != nil {
		return err
	}

	// The JNI environment is bound to the thread that created the VM.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	slog.Debug("Create VM", slog.Any("options", options))

	vm, err := rt.CreateVM(options)
	if err != nil {
		return fmt.Errorf("create vm: %w", err)
	}

	defer func() {
		destroyErr := vm.Destroy()
		if destroyErr != nil {
			err = errors.Join(err, fmt.Errorf("destroy vm: %w", destroyErr))
		}
	}()

	err = vm.InvokeMain(spec.Config.MainClass, spec.Args)
	if err != nil {
		return fmt.Errorf("invoke main: %w", err)
	}

	return nil
}

func (l *Launcher) replaceProcess(
	ctx context.Context,
	spec Spec,
	jarPath string,
) error {
	javaPath := sys.JavaExecutable(spec.Dir)
	argv := JavaCommandArgs(javaPath, jarPath, spec.Config.VMArgs, spec.Args)

	l.changeDir(spec.Dir)

	err := ctx.Err()
	if err != nil {
		return err
	}

	slog.Debug("Exec", slog.String("path", javaPath), slog.Any("argv", argv))

	err = l.Exec(javaPath, argv, l.Environ())
	if err != nil {
		return fmt.Errorf("exec %s: %w", javaPath, err)
	}

	return nil
}

// changeDir changes into the given directory. Failure is not fatal, as the
// application may not rely on the working directory.
func (l *Launcher) changeDir(dir string) {
	err := l.Chdir(dir)
	if err != nil {
		slog.Warn("Failed to change working directory",
			slog.String("dir", dir),
			slog.Any("error", err),
		)
	}
}
