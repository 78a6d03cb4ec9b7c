// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/aibor/jvmlaunch/internal/launcher"
	"github.com/caarlos0/env/v11"
)

const envPrefix = "JVMLAUNCH_"

// ErrEnvInvalid is returned if environment options can not be parsed.
var ErrEnvInvalid = errors.New("invalid environment option")

// Env are options of the bootstrapper itself. They are read from environment
// variables with prefix JVMLAUNCH_, as all arguments belong to the
// application.
type Env struct {
	// LogLevel is the minimum level of log messages on stderr.
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"warn"`

	// Strategy overrides the default launch strategy of the platform.
	Strategy launcher.Strategy `env:"STRATEGY"`
}

// ParseEnv reads the [Env] from the process environment.
func ParseEnv() (Env, error) {
	cfg := Env{
		Strategy: launcher.DefaultStrategy,
	}

	err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return Env{}, fmt.Errorf("%w: %w", ErrEnvInvalid, err)
	}

	return cfg, nil
}
