// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package config reads the launch configuration that is bundled next to the
// launcher executable.
//
// The configuration is a JSON document named "config.json":
//
//	{
//	  "jar": "app.jar",
//	  "mainClass": "com.example.Main",
//	  "vmArgs": ["-Xmx512m"]
//	}
//
// "jar" is the path of the application payload relative to the executable
// directory, "mainClass" the fully qualified name of the class with the static
// main method and "vmArgs" optional runtime options. Unknown keys are ignored.
package config
