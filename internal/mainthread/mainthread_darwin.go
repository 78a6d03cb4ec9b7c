// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package mainthread

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"
)

const coreFoundationPath = "/System/Library/Frameworks/CoreFoundation.framework/CoreFoundation"

// pollInterval is the maximum time the loop keeps running after the worker
// finished, in case the stop request arrived before the loop ran.
const pollInterval = 0.5

// Run runs fn on a worker while the calling thread runs its CoreFoundation run
// loop. Called on the main thread, this is the main run loop. If the run loop
// is not available, fn is run synchronously.
func Run(fn func() error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	loop, err := newCFLoop()
	if err != nil {
		slog.Warn("Main run loop not available", slog.Any("error", err))
		return fn()
	}

	return RunWith(loop, fn)
}

// runLoopSourceContext is CFRunLoopSourceContext (version 0).
type runLoopSourceContext struct {
	version         int
	info            uintptr
	retain          uintptr
	release         uintptr
	copyDescription uintptr
	equal           uintptr
	hash            uintptr
	schedule        uintptr
	cancel          uintptr
	perform         uintptr
}

var noopPerform = purego.NewCallback(func(uintptr) uintptr { return 0 })

type cfLoop struct {
	loop uintptr
	mode uintptr
	done atomic.Bool

	runInMode func(mode uintptr, seconds float64, returnAfterSourceHandled bool) int32
	stop      func(loop uintptr)
	wakeUp    func(loop uintptr)
}

func newCFLoop() (*cfLoop, error) {
	lib, err := purego.Dlopen(coreFoundationPath, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("open CoreFoundation: %w", err)
	}

	var (
		getCurrent   func() uintptr
		sourceCreate func(allocator uintptr, order int, ctx *runLoopSourceContext) uintptr
		addSource    func(loop uintptr, source uintptr, mode uintptr)
	)

	loop := &cfLoop{}

	purego.RegisterLibFunc(&getCurrent, lib, "CFRunLoopGetCurrent")
	purego.RegisterLibFunc(&sourceCreate, lib, "CFRunLoopSourceCreate")
	purego.RegisterLibFunc(&addSource, lib, "CFRunLoopAddSource")
	purego.RegisterLibFunc(&loop.runInMode, lib, "CFRunLoopRunInMode")
	purego.RegisterLibFunc(&loop.stop, lib, "CFRunLoopStop")
	purego.RegisterLibFunc(&loop.wakeUp, lib, "CFRunLoopWakeUp")

	loop.mode, err = stringConstant(lib, "kCFRunLoopDefaultMode")
	if err != nil {
		return nil, err
	}

	commonModes, err := stringConstant(lib, "kCFRunLoopCommonModes")
	if err != nil {
		return nil, err
	}

	loop.loop = getCurrent()

	// A run loop without sources returns immediately.
	ctx := &runLoopSourceContext{perform: noopPerform}
	source := sourceCreate(0, 0, ctx)
	addSource(loop.loop, source, commonModes)

	return loop, nil
}

func stringConstant(lib uintptr, name string) (uintptr, error) {
	sym, err := purego.Dlsym(lib, name)
	if err != nil {
		return 0, fmt.Errorf("lookup %s: %w", name, err)
	}

	return **(**uintptr)(unsafe.Pointer(&sym)), nil
}

func (l *cfLoop) Run() {
	for !l.done.Load() {
		l.runInMode(l.mode, pollInterval, false)
	}
}

func (l *cfLoop) Stop() {
	l.done.Store(true)
	l.stop(l.loop)
	l.wakeUp(l.loop)
}
