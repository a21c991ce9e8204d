// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/deriver_mock.go -package=mock

import "github.com/lazypass/lazypass/internal/secret"

// VaultProvider hands out the process vault. *secret.Keeper implements it.
type VaultProvider interface {
	// Vault returns the vault or secret.ErrVaultUninitialized.
	Vault() (*secret.Vault, error)
}

// Deriver turns a phrase into a password using the pepper held in a vault.
//
// Derivation is deterministic: the same phrase, pepper and [Params] always
// give the same result. It is also deliberately slow and memory hungry, so
// callers must not run it on the goroutine that serves the UI.
type Deriver interface {
	// Derive returns the password as lowercase hex, two characters per
	// output byte.
	//
	// Errors: secret.ErrVaultUninitialized when no pepper was acquired,
	// *ParameterError for parameters Argon2id rejects, *DerivationError when
	// the computation itself fails. Error text never contains the phrase or
	// the pepper.
	Derive(input string, vaults VaultProvider) (string, error)

	// DeriveBytes is Derive without the encoding. The caller must wipe the
	// result.
	DeriveBytes(input string, vaults VaultProvider) ([]byte, error)

	// Params returns the parameters every derivation uses.
	Params() Params
}
