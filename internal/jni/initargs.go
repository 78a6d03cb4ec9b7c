// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package jni

import (
	"runtime"
	"unsafe"
)

// javaVMOption mirrors JavaVMOption of jni.h.
type javaVMOption struct {
	optionString *byte
	extraInfo    uintptr
}

// javaVMInitArgs mirrors JavaVMInitArgs of jni.h.
type javaVMInitArgs struct {
	version            int32
	nOptions           int32
	options            *javaVMOption
	ignoreUnrecognized uint8
}

// initArgs holds the init arguments passed to JNI_CreateJavaVM and keeps the
// memory they reference pinned until released.
type initArgs struct {
	raw     javaVMInitArgs
	options []javaVMOption
	strings [][]byte
	pinner  runtime.Pinner
}

func newInitArgs(version int32, options []string) (*initArgs, error) {
	args := &initArgs{
		options: make([]javaVMOption, len(options)),
		strings: make([][]byte, len(options)),
	}

	for idx, option := range options {
		str, err := cString(option)
		if err != nil {
			return nil, err
		}

		args.strings[idx] = str
		args.options[idx].optionString = &str[0]
	}

	args.raw = javaVMInitArgs{
		version:  version,
		nOptions: int32(len(options)), //nolint:gosec
	}

	for _, str := range args.strings {
		args.pinner.Pin(&str[0])
	}

	if len(args.options) > 0 {
		args.pinner.Pin(&args.options[0])
		args.raw.options = &args.options[0]
	}

	args.pinner.Pin(&args.raw)

	return args, nil
}

// Options returns the option strings as referenced by the raw init args.
func (a *initArgs) Options() []string {
	if a.raw.options == nil {
		return nil
	}

	options := make([]string, 0, a.raw.nOptions)
	for _, option := range unsafe.Slice(a.raw.options, a.raw.nOptions) {
		options = append(options, goString(option.optionString))
	}

	return options
}

// release unpins the memory. The init args must not be used by the runtime
// anymore.
func (a *initArgs) release() {
	a.pinner.Unpin()
}
