// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-mode run mode: tui, print, copy or type
//	-print / -copy / -type shorthands for -mode
//	-version print build information and exit
//	-pepper-env name of the environment variable holding the pepper
//	-env-file dotenv file loaded at startup
//	-kdf-memory Argon2id memory cost in KiB
//	-kdf-iterations Argon2id passes
//	-kdf-parallelism Argon2id lanes
//	-kdf-key-length output length in bytes
//	-clear-delay clipboard clear delay (e.g., "10s")
//	-workers maximum concurrent derivations
//	-log-path log file path
//	-log-level log level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlagSet(flag.NewFlagSet(programName(), flag.ContinueOnError), args)
}

func parseFlagSet(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var (
		mode           string
		printMode      bool
		copyMode       bool
		typeMode       bool
		showVersion    bool
		pepperEnv      string
		envFile        string
		kdfMemory      uint
		kdfIterations  uint
		kdfParallelism uint
		kdfKeyLength   uint
		clearDelay     time.Duration
		maxConcurrent  int
		logPath        string
		logLevel       string
		jsonConfigPath string
	)

	fs.StringVar(&mode, "mode", "", "Run mode: tui, print, copy or type")
	fs.BoolVar(&printMode, "print", false, "Print the derived password (same as -mode print)")
	fs.BoolVar(&copyMode, "copy", false, "Copy the derived password (same as -mode copy)")
	fs.BoolVar(&typeMode, "type", false, "Type the derived password (same as -mode type)")
	fs.BoolVar(&showVersion, "version", false, "Print build information and exit")
	fs.StringVar(&pepperEnv, "pepper-env", "", "Environment variable holding the pepper")
	fs.StringVar(&envFile, "env-file", "", "Dotenv file loaded at startup")
	fs.UintVar(&kdfMemory, "kdf-memory", 0, "Argon2id memory cost in KiB")
	fs.UintVar(&kdfIterations, "kdf-iterations", 0, "Argon2id iterations")
	fs.UintVar(&kdfParallelism, "kdf-parallelism", 0, "Argon2id parallelism")
	fs.UintVar(&kdfKeyLength, "kdf-key-length", 0, "Derived key length in bytes")
	fs.DurationVar(&clearDelay, "clear-delay", 0, "Clipboard clear delay (e.g., 10s)")
	fs.IntVar(&maxConcurrent, "workers", 0, "Maximum concurrent derivations")
	fs.StringVar(&logPath, "log-path", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if kdfParallelism > 255 {
		return nil, fmt.Errorf("error parsing flags: kdf-parallelism %d is above 255", kdfParallelism)
	}
	if kdfMemory > 1<<32-1 || kdfIterations > 1<<32-1 || kdfKeyLength > 1<<32-1 {
		return nil, fmt.Errorf("error parsing flags: kdf value does not fit in 32 bits")
	}

	switch {
	case printMode:
		mode = ModePrint
	case copyMode:
		mode = ModeCopy
	case typeMode:
		mode = ModeType
	}

	return &StructuredConfig{
		App: App{
			Mode:        mode,
			PepperEnv:   pepperEnv,
			EnvFile:     envFile,
			ShowVersion: showVersion,
		},
		KDF: KDF{
			Memory:      uint32(kdfMemory),
			Iterations:  uint32(kdfIterations),
			Parallelism: uint8(kdfParallelism),
			KeyLength:   uint32(kdfKeyLength),
		},
		Clipboard: Clipboard{
			ClearDelay: clearDelay,
		},
		Workers: Workers{
			MaxConcurrent: maxConcurrent,
		},
		Log: Log{
			Path:  logPath,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) > 0 {
		return os.Args[0]
	}
	return "lazypass"
}
