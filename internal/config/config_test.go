// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/jvmlaunch/internal/config"
	"github.com/aibor/jvmlaunch/internal/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(tb testing.TB, content string) string {
	tb.Helper()

	dir := tb.TempDir()

	err := os.WriteFile(config.Path(dir), []byte(content), 0o600)
	require.NoError(tb, err)

	return dir
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		expected      config.LaunchConfig
		expectedErr   error
		expectedField string
	}{
		{
			name: "complete",
			content: `{
				"jar": "app.jar",
				"mainClass": "com.example.Main",
				"vmArgs": ["-Xmx512m", "-Dfoo=bar", "-Xmx1g"]
			}`,
			expected: config.LaunchConfig{
				Jar:       "app.jar",
				MainClass: "com.example.Main",
				VMArgs:    []string{"-Xmx512m", "-Dfoo=bar", "-Xmx1g"},
			},
		},
		{
			name: "without vm args",
			content: `{
				"jar": "lib/app.jar",
				"mainClass": "com/example/Main"
			}`,
			expected: config.LaunchConfig{
				Jar:       "lib/app.jar",
				MainClass: "com/example/Main",
			},
		},
		{
			name: "unknown keys",
			content: `{
				"jar": "app.jar",
				"mainClass": "com.example.Main",
				"classPath": ["other.jar"],
				"icon": "app.icns"
			}`,
			expected: config.LaunchConfig{
				Jar:       "app.jar",
				MainClass: "com.example.Main",
			},
		},
		{
			name: "missing main class",
			content: `{
				"jar": "app.jar",
				"vmArgs": ["-Xmx512m"]
			}`,
			expectedErr:   config.ErrMissingField,
			expectedField: config.KeyMainClass,
		},
		{
			name: "empty main class",
			content: `{
				"jar": "app.jar",
				"mainClass": ""
			}`,
			expectedErr:   config.ErrMissingField,
			expectedField: config.KeyMainClass,
		},
		{
			name: "missing jar",
			content: `{
				"mainClass": "com.example.Main"
			}`,
			expectedErr:   config.ErrMissingField,
			expectedField: config.KeyJar,
		},
		{
			name:        "invalid json",
			content:     `{"jar": "app.jar",`,
			expectedErr: config.ErrMalformed,
		},
		{
			name:        "empty file",
			content:     "",
			expectedErr: config.ErrMalformed,
		},
		{
			name: "vm args of wrong type",
			content: `{
				"jar": "app.jar",
				"mainClass": "com.example.Main",
				"vmArgs": {"Xmx": "512m"}
			}`,
			expectedErr: config.ErrMalformed,
		},
		{
			name: "jar of wrong type",
			content: `{
				"jar": 42,
				"mainClass": "com.example.Main"
			}`,
			expectedErr: config.ErrMalformed,
		},
		{
			name: "main class of wrong type",
			content: `{
				"jar": "app.jar",
				"mainClass": true
			}`,
			expectedErr: config.ErrMalformed,
		},
		{
			name: "vm args elements of wrong type",
			content: `{
				"jar": "app.jar",
				"mainClass": "com.example.Main",
				"vmArgs": [512, true]
			}`,
			expectedErr: config.ErrMalformed,
		},
		{
			name: "vm args single string",
			content: `{
				"jar": "app.jar",
				"mainClass": "com.example.Main",
				"vmArgs": "-Xmx512m"
			}`,
			expectedErr: config.ErrMalformed,
		},
		{
			name: "keys case-insensitive",
			content: `{
				"JAR": "app.jar",
				"MAINCLASS": "com.example.Main",
				"VmArgs": ["-Xmx512m"]
			}`,
			expected: config.LaunchConfig{
				Jar:       "app.jar",
				MainClass: "com.example.Main",
				VMArgs:    []string{"-Xmx512m"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.content)

			actual, err := config.Load(dir)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				var cfgErr *config.Error
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, config.Path(dir), cfgErr.Path)
				assert.Equal(t, tt.expectedField, cfgErr.Field)
			}

			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := config.Load(dir)
	require.ErrorIs(t, err, config.ErrNotFound)
	require.ErrorIs(t, err, &config.Error{})
	assert.Equal(t, "config "+config.Path(dir)+": file not found", err.Error())
}

func TestLoad_NotRegularFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(config.Path(dir), 0o700))

	_, err := config.Load(dir)
	require.ErrorIs(t, err, sys.ErrNotRegularFile)
	require.ErrorIs(t, err, &config.Error{})
}

func TestLaunchConfig_JarPath(t *testing.T) {
	cfg := config.LaunchConfig{Jar: "lib/app.jar"}

	assert.Equal(t,
		filepath.Join("/opt/app", "lib", "app.jar"),
		cfg.JarPath("/opt/app"),
	)
}

func TestError(t *testing.T) {
	err := &config.Error{
		Path:  "/app/config.json",
		Field: config.KeyMainClass,
		Err:   config.ErrMissingField,
	}

	assert.Equal(t,
		"config /app/config.json: mainClass: required field missing",
		err.Error(),
	)
	assert.ErrorIs(t, err, config.ErrMissingField)
	assert.NotErrorIs(t, assert.AnError, &config.Error{})
}
