// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] is usable at
// startup. Argon2id bounds are checked by the crypto package, which owns
// them.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.Mode {
	case ModeTUI, ModePrint, ModeCopy, ModeType:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidAppConfigs, cfg.App.Mode)
	}

	if cfg.App.PepperEnv == "" {
		return fmt.Errorf("%w: empty pepper variable name", ErrInvalidAppConfigs)
	}

	if cfg.Clipboard.ClearDelay <= 0 {
		return ErrInvalidClipboardConfigs
	}

	if cfg.Workers.MaxConcurrent < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
