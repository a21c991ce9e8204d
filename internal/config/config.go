// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Run modes selected with -mode / APP_MODE.
const (
	ModeTUI   = "tui"
	ModePrint = "print"
	ModeCopy  = "copy"
	ModeType  = "type"
)

// StructuredConfig is the top-level configuration container for lazypass.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// The pepper itself is never part of the configuration: only the name of the
// variable it is read from.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the run mode and the
	// name of the pepper variable.
	App App `envPrefix:"APP_"`

	// KDF holds the Argon2id cost parameters. They must stay identical
	// between runs for a phrase to yield the same password.
	KDF KDF `envPrefix:"KDF_"`

	// Clipboard holds the self-clearing clipboard settings.
	Clipboard Clipboard `envPrefix:"CLIPBOARD_"`

	// Workers holds the settings of the derivation worker pool.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the log file location and level.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the LAZYPASS_CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Mode selects the frontend: "tui" (default), "print", "copy" or "type".
	// Env: LAZYPASS_APP_MODE
	Mode string `env:"MODE"`

	// PepperEnv is the name of the environment variable holding the pepper.
	// The variable is removed from the process environment at startup.
	// Env: LAZYPASS_APP_PEPPER_ENV
	PepperEnv string `env:"PEPPER_ENV"`

	// EnvFile is the dotenv file loaded before the pepper is acquired.
	// Variables already present in the environment are not overridden.
	// Env: LAZYPASS_APP_ENV_FILE
	EnvFile string `env:"ENV_FILE"`

	// ShowVersion prints build information and exits.
	ShowVersion bool `env:"SHOW_VERSION"`
}

// KDF holds the Argon2id parameters.
type KDF struct {
	// Memory is the memory cost in KiB.
	// Env: LAZYPASS_KDF_MEMORY
	Memory uint32 `env:"MEMORY"`

	// Iterations is the number of passes over the memory.
	// Env: LAZYPASS_KDF_ITERATIONS
	Iterations uint32 `env:"ITERATIONS"`

	// Parallelism is the number of lanes.
	// Env: LAZYPASS_KDF_PARALLELISM
	Parallelism uint8 `env:"PARALLELISM"`

	// KeyLength is the output length in bytes; the password has twice as
	// many hex characters.
	// Env: LAZYPASS_KDF_KEY_LENGTH
	KeyLength uint32 `env:"KEY_LENGTH"`
}

// Clipboard holds the self-clearing clipboard settings.
type Clipboard struct {
	// ClearDelay is how long a copied password may stay on the clipboard
	// (e.g. "10s").
	// Env: LAZYPASS_CLIPBOARD_CLEAR_DELAY
	ClearDelay time.Duration `env:"CLEAR_DELAY"`
}

// Workers holds the settings of the derivation worker pool.
type Workers struct {
	// MaxConcurrent bounds how many derivations run at once. Every
	// derivation allocates KDF.Memory KiB.
	// Env: LAZYPASS_WORKERS_MAX_CONCURRENT
	MaxConcurrent int `env:"MAX_CONCURRENT"`
}

// Log holds the log settings.
type Log struct {
	// Path is the log file. Empty means lazypass.log next to the executable.
	// Env: LAZYPASS_LOG_PATH
	Path string `env:"PATH"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LAZYPASS_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags parsed from args (without the program name)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left unset by every source get the values of [Defaults].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
