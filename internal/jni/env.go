// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build windows || ((darwin || linux) && (amd64 || arm64))

package jni

import (
	"runtime"
	"unsafe"
)

// Object is a JNI reference, like jobject, jclass, jstring or jobjectArray.
type Object uintptr

// MethodID identifies a resolved method.
type MethodID uintptr

// Env is a JNIEnv. It is only valid on the thread that created the [VM].
type Env struct {
	ptr unsafe.Pointer
}

// Version returns the JNI version of the runtime.
func (e *Env) Version() int32 {
	return int32(call(e.ptr, fnGetVersion)) //nolint:gosec
}

// FindClass resolves a class by its binary name, like "java/lang/String".
// It returns 0 if the class can not be found and an exception is pending.
func (e *Env) FindClass(name string) (Object, error) {
	cName, err := cString(name)
	if err != nil {
		return 0, err
	}

	ret := call(e.ptr, fnFindClass, uintptr(unsafe.Pointer(&cName[0])))
	runtime.KeepAlive(cName)

	return Object(ret), nil
}

// GetStaticMethodID resolves a static method of the given class. It returns 0
// if the method can not be found and an exception is pending.
func (e *Env) GetStaticMethodID(
	class Object,
	name, signature string,
) (MethodID, error) {
	cName, err := cString(name)
	if err != nil {
		return 0, err
	}

	cSig, err := cString(signature)
	if err != nil {
		return 0, err
	}

	ret := call(e.ptr, fnGetStaticMethodID,
		uintptr(class),
		uintptr(unsafe.Pointer(&cName[0])),
		uintptr(unsafe.Pointer(&cSig[0])),
	)
	runtime.KeepAlive(cName)
	runtime.KeepAlive(cSig)

	return MethodID(ret), nil
}

// NewStringUTF creates a java.lang.String from the given bytes, which are
// passed unmodified. It returns 0 if the string can not be created.
func (e *Env) NewStringUTF(s string) (Object, error) {
	cStr, err := cString(s)
	if err != nil {
		return 0, err
	}

	ret := call(e.ptr, fnNewStringUTF, uintptr(unsafe.Pointer(&cStr[0])))
	runtime.KeepAlive(cStr)

	return Object(ret), nil
}

// NewObjectArray creates an array of the given class with all elements set
// to init.
func (e *Env) NewObjectArray(length int32, class, init Object) Object {
	return Object(call(e.ptr, fnNewObjectArray,
		uintptr(length), //nolint:gosec
		uintptr(class),
		uintptr(init),
	))
}

// SetObjectArrayElement sets the element at idx of the given array.
func (e *Env) SetObjectArrayElement(array Object, idx int32, value Object) {
	call(e.ptr, fnSetObjectArrayElement,
		uintptr(array),
		uintptr(idx), //nolint:gosec
		uintptr(value),
	)
}

// CallStaticVoidMethod calls a static void method with the given object
// arguments. It blocks until the method returns.
func (e *Env) CallStaticVoidMethod(
	class Object,
	method MethodID,
	args ...Object,
) {
	// jvalue is a union of 64 bits. Object references fill the low bytes on
	// little endian platforms.
	values := make([]uint64, len(args)+1)
	for idx, arg := range args {
		values[idx] = uint64(arg)
	}

	call(e.ptr, fnCallStaticVoidMethodA,
		uintptr(class),
		uintptr(method),
		uintptr(unsafe.Pointer(&values[0])),
	)
	runtime.KeepAlive(values)
}

// DeleteLocalRef releases a local reference.
func (e *Env) DeleteLocalRef(obj Object) {
	call(e.ptr, fnDeleteLocalRef, uintptr(obj))
}

// ExceptionCheck reports whether an exception is pending.
func (e *Env) ExceptionCheck() bool {
	return uint8(call(e.ptr, fnExceptionCheck)) != 0
}

// ExceptionDescribe prints the pending exception and its stack trace to the
// runtime's standard error and clears it.
func (e *Env) ExceptionDescribe() {
	call(e.ptr, fnExceptionDescribe)
}
