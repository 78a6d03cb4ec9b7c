// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package launcher

// ClasspathOptionPrefix is the prefix of the init option that sets the class
// path of the VM.
const ClasspathOptionPrefix = "-Djava.class.path="

// JarFlag makes the java executable run the main class of a jar.
const JarFlag = "-jar"

// InitOptions returns the VM init options. The class path option is always
// first, followed by the given VM arguments in order.
func InitOptions(jarPath string, vmArgs []string) []string {
	options := make([]string, 0, len(vmArgs)+1)
	options = append(options, ClasspathOptionPrefix+jarPath)
	options = append(options, vmArgs...)

	return options
}

// JavaCommandArgs returns the argument vector for the java executable at the
// given path. The process args are appended after the jar and passed to the
// main method as is.
func JavaCommandArgs(
	javaPath string,
	jarPath string,
	vmArgs []string,
	args []string,
) []string {
	argv := make([]string, 0, len(vmArgs)+len(args)+3)
	argv = append(argv, javaPath)
	argv = append(argv, vmArgs...)
	argv = append(argv, JarFlag, jarPath)
	argv = append(argv, args...)

	return argv
}
