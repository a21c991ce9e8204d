// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Defaults returns the configuration used for every field no source sets.
// The KDF values match the parameters every existing password was derived
// with; changing them changes every password.
func Defaults() StructuredConfig {
	return StructuredConfig{
		App: App{
			Mode:      ModeTUI,
			PepperEnv: "SALT_PHRASE",
			EnvFile:   ".env",
		},
		KDF: KDF{
			Memory:      1024 * 1024, // 1 GiB
			Iterations:  2,
			Parallelism: 2,
			KeyLength:   64,
		},
		Clipboard: Clipboard{
			ClearDelay: 10 * time.Second,
		},
		Workers: Workers{
			MaxConcurrent: 1,
		},
		Log: Log{
			Level: "info",
		},
	}
}
