// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/aibor/jvmlaunch/internal/sys"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// FileName is the name of the configuration file in the executable
// directory.
const FileName = "config.json"

// Keys of the configuration file.
const (
	KeyJar       = "jar"
	KeyMainClass = "mainClass"
	KeyVMArgs    = "vmArgs"
)

// LaunchConfig is the content of the configuration file.
type LaunchConfig struct {
	// Jar is the application payload path relative to the executable
	// directory.
	Jar string `mapstructure:"jar"`
	// MainClass is the fully qualified name of the entry point class.
	MainClass string `mapstructure:"mainClass"`
	// VMArgs are additional runtime options in the order they are applied.
	VMArgs []string `mapstructure:"vmArgs"`
}

// strictDecoding rejects values of the wrong type instead of converting them.
// Viper's default hooks would turn a single string into a list.
func strictDecoding(c *mapstructure.DecoderConfig) {
	c.WeaklyTypedInput = false
	c.DecodeHook = nil
}

// Path returns the path of the configuration file in the given directory.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads and validates the configuration file in the given directory.
//
// Keys are matched case-insensitively. Values must have the exact JSON type:
// strings for jar and mainClass, an array of strings for vmArgs.
//
// Any failure is returned as [*Error]. A [LaunchConfig] returned without
// error always has non-empty [LaunchConfig.Jar] and [LaunchConfig.MainClass].
func Load(dir string) (LaunchConfig, error) {
	path := Path(dir)

	err := sys.ValidateFilePath(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrNotFound
		}

		return LaunchConfig{}, &Error{Path: path, Err: err}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	err = v.ReadInConfig()
	if err != nil {
		return LaunchConfig{}, &Error{
			Path: path,
			Err:  fmt.Errorf("%w: %w", ErrMalformed, err),
		}
	}

	var cfg LaunchConfig

	err = v.Unmarshal(&cfg, strictDecoding)
	if err != nil {
		return LaunchConfig{}, &Error{
			Path: path,
			Err:  fmt.Errorf("%w: %w", ErrMalformed, err),
		}
	}

	err = cfg.Validate()
	if err != nil {
		var cfgErr *Error
		if errors.As(err, &cfgErr) {
			cfgErr.Path = path
		}

		return LaunchConfig{}, err
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *LaunchConfig) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{KeyJar, c.Jar},
		{KeyMainClass, c.MainClass},
	}

	for _, field := range required {
		if field.value == "" {
			return &Error{Field: field.key, Err: ErrMissingField}
		}
	}

	return nil
}

// JarPath returns the path of the application payload for the given
// executable directory.
func (c *LaunchConfig) JarPath(dir string) string {
	return filepath.Join(dir, c.Jar)
}
