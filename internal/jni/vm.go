// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build windows || ((darwin || linux) && (amd64 || arm64))

package jni

import "unsafe"

// VM is a created Java VM together with the [Env] of the creating thread.
type VM struct {
	ptr  unsafe.Pointer
	env  *Env
	args *initArgs
}

// Env returns the [Env] of the thread that created the VM.
func (vm *VM) Env() *Env {
	return vm.env
}

// Options returns the options the VM was created with.
func (vm *VM) Options() []string {
	return vm.args.Options()
}

// InvokeMain calls the static main method of the given class with the given
// arguments. See [Env.CallStaticMain].
func (vm *VM) InvokeMain(className string, args []string) error {
	return vm.env.CallStaticMain(className, args)
}

// Destroy unloads the VM. It blocks until all non-daemon threads of the VM
// have terminated. The memory of the init arguments is released afterwards.
func (vm *VM) Destroy() error {
	defer vm.args.release()

	res := resultOf(call(vm.ptr, fnDestroyJavaVM))
	if res != ResultOK {
		return &ResultError{Func: "DestroyJavaVM", Code: res}
	}

	return nil
}
