// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build windows || ((darwin || linux) && (amd64 || arm64))

package jni

import "fmt"

// NewStringArray creates a java.lang.String[] with the given elements in
// order.
func (e *Env) NewStringArray(elements []string) (Object, error) {
	class, err := e.FindClass(stringClassName)
	if err != nil {
		return 0, err
	}

	if class == 0 {
		e.ExceptionDescribe()
		return 0, &LookupError{Kind: LookupClass, Name: stringClassName}
	}

	array := e.NewObjectArray(int32(len(elements)), class, 0) //nolint:gosec
	if array == 0 {
		e.ExceptionDescribe()
		return 0, fmt.Errorf("string array: %w", ErrAllocation)
	}

	for idx, element := range elements {
		str, err := e.NewStringUTF(element)
		if err != nil {
			return 0, fmt.Errorf("element %d: %w", idx, err)
		}

		if str == 0 {
			e.ExceptionDescribe()
			return 0, fmt.Errorf("element %d: %w", idx, ErrAllocation)
		}

		e.SetObjectArrayElement(array, int32(idx), str) //nolint:gosec
		e.DeleteLocalRef(str)
	}

	return array, nil
}

// CallStaticMain calls "public static void main(String[])" of the given class
// with the given arguments and blocks until it returns.
//
// The class name may be separated by dots or slashes. If main terminates with
// an exception, the exception is printed and [ErrUncaughtException] returned.
func (e *Env) CallStaticMain(className string, args []string) error {
	argArray, err := e.NewStringArray(args)
	if err != nil {
		return fmt.Errorf("arguments: %w", err)
	}

	class, err := e.FindClass(BinaryName(className))
	if err != nil {
		return fmt.Errorf("main class: %w", err)
	}

	if class == 0 {
		e.ExceptionDescribe()
		return &LookupError{Kind: LookupClass, Name: className}
	}

	method, err := e.GetStaticMethodID(
		class,
		MainMethodName,
		MainMethodSignature,
	)
	if err != nil {
		return fmt.Errorf("main method: %w", err)
	}

	if method == 0 {
		e.ExceptionDescribe()

		return &LookupError{
			Kind: LookupMethod,
			Name: className + "." + MainMethodName + MainMethodSignature,
		}
	}

	e.CallStaticVoidMethod(class, method, argArray)

	if e.ExceptionCheck() {
		e.ExceptionDescribe()
		return ErrUncaughtException
	}

	return nil
}
