// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown mode or an empty pepper variable name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidClipboardConfigs indicates a non-positive clear delay.
	ErrInvalidClipboardConfigs = errors.New("invalid clipboard configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero concurrent derivations).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
