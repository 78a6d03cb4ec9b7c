// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build mage

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
	"github.com/magefile/mage/target"
)

const (
	pkg       = "github.com/aibor/jvmlaunch/cmd/jvmlaunch"
	distDir   = "dist"
	toolsMod  = ".github/workflows/go.mod"
	reportDir = "reports"
)

type platform struct {
	goos   string
	goarch string
}

// Linux binaries for 386 can not load the runtime library in process and
// default to replacing the process with the bundled java executable.
var platforms = []platform{
	{"linux", "amd64"},
	{"linux", "arm64"},
	{"linux", "386"},
	{"darwin", "amd64"},
	{"darwin", "arm64"},
	{"windows", "amd64"},
	{"windows", "386"},
}

func (p platform) binaryPath() string {
	name := "jvmlaunch"
	if p.goos == "windows" {
		name += ".exe"
	}

	return filepath.Join(distDir, p.goos+"-"+p.goarch, name)
}

// Build bootstrapper binaries for all supported platforms. A failing platform
// does not stop the others.
func Build() error {
	var errs []error

	for _, p := range platforms {
		err := buildFor(p)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s/%s: %w", p.goos, p.goarch, err))
		}
	}

	return errors.Join(errs...)
}

func buildFor(p platform) error {
	path := p.binaryPath()

	mod, err := target.Dir(path, "cmd", "internal", "go.mod")
	if err != nil {
		return err
	}

	if !mod {
		return nil
	}

	env := map[string]string{
		"CGO_ENABLED": "0",
		"GOOS":        p.goos,
		"GOARCH":      p.goarch,
	}

	ldflags := "-s -w"
	// Windows binaries are GUI applications. Use --console for output.
	if p.goos == "windows" {
		ldflags += " -H=windowsgui"
	}

	return sh.RunWithV(env, "go", "build", "-trimpath",
		"-ldflags", ldflags, "-o", path, pkg)
}

// Test runs all unit tests.
func Test() error {
	return sh.RunV("go", "test", "-race", "-cover", "./...")
}

// Report writes a junit report of all unit tests.
func Report() error {
	err := os.MkdirAll(reportDir, 0o755)
	if err != nil {
		return err
	}

	jsonPath := filepath.Join(reportDir, "test.json")

	output, testErr := sh.Output("go", "test", "-json", "./...")

	err = os.WriteFile(jsonPath, []byte(output), 0o644)
	if err != nil {
		return err
	}

	err = sh.RunV("go", "tool", "-modfile", toolsMod, "go-junit-report",
		"-parser", "gojson",
		"-in", jsonPath,
		"-out", filepath.Join(reportDir, "junit.xml"),
	)
	if err != nil {
		return err
	}

	return testErr
}

// Vuln checks for known vulnerabilities.
func Vuln() error {
	return sh.RunV("go", "tool", "-modfile", toolsMod, "govulncheck", "./...")
}

// Clean removes build artifacts.
func Clean() {
	mg.Deps(cleanDist, cleanReports)
}

func cleanDist() error {
	return sh.Rm(distDir)
}

func cleanReports() error {
	return sh.Rm(reportDir)
}
