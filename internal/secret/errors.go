// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secret

import "errors"

var (
	// ErrVaultUninitialized is returned when the pepper was never acquired
	// and a caller asks for the vault.
	ErrVaultUninitialized = errors.New("secret vault is not initialized")

	// ErrDoubleInitialization is returned by [Keeper.Init] on every call
	// after the first one. Callers must treat it as fatal.
	ErrDoubleInitialization = errors.New("secret vault is already initialized")

	// ErrVaultDestroyed is returned by [Vault.Reveal] once [Vault.Destroy]
	// has wiped the buffers.
	ErrVaultDestroyed = errors.New("secret vault is destroyed")

	// ErrEmptyPepper is returned when a vault is built from an empty value.
	ErrEmptyPepper = errors.New("pepper is empty")
)
