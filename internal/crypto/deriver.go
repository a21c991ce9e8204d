// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/lazypass/lazypass/internal/secret"
)

// PasswordDeriver derives passwords with Argon2id (RFC 9106, version 0x13).
// The phrase is the Argon2 password and the pepper is the salt.
type PasswordDeriver struct {
	params Params
}

var _ Deriver = (*PasswordDeriver)(nil)

// NewPasswordDeriver validates params and returns a deriver bound to them.
func NewPasswordDeriver(params Params) (*PasswordDeriver, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &PasswordDeriver{params: params}, nil
}

func (d *PasswordDeriver) Params() Params {
	return d.params
}

// Derive returns DeriveBytes hex encoded. The raw output is wiped before
// Derive returns.
func (d *PasswordDeriver) Derive(input string, vaults VaultProvider) (string, error) {
	raw, err := d.DeriveBytes(input, vaults)
	if err != nil {
		return "", err
	}
	defer secret.Wipe(raw)

	return hex.EncodeToString(raw), nil
}

// DeriveBytes reveals the pepper for the duration of one hash and wipes the
// plaintext pepper and the phrase copy before returning. The caller owns the
// returned slice.
func (d *PasswordDeriver) DeriveBytes(input string, vaults VaultProvider) ([]byte, error) {
	vault, err := vaults.Vault()
	if err != nil {
		return nil, err
	}

	// a short pepper is rejected without revealing it
	if n := vault.Len(); n > 0 {
		if err = validatePepperLength(n); err != nil {
			return nil, err
		}
	}

	pepper, err := vault.Reveal()
	if err != nil {
		return nil, &DerivationError{Stage: StageReveal, Err: err}
	}
	defer pepper.Wipe()

	phrase := []byte(input)
	defer secret.Wipe(phrase)

	raw, err := d.hash(phrase, pepper.Bytes())
	if err != nil {
		return nil, err
	}
	if len(raw) != int(d.params.KeyLength) {
		secret.Wipe(raw)
		return nil, &DerivationError{
			Stage: StageEncode,
			Err:   fmt.Errorf("got %d bytes, want %d", len(raw), d.params.KeyLength),
		}
	}
	return raw, nil
}

// hash runs argon2.IDKey. A panic inside the KDF, such as a failed
// allocation of the memory matrix, is returned as a *DerivationError.
func (d *PasswordDeriver) hash(phrase, salt []byte) (raw []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			raw = nil
			err = &DerivationError{Stage: StageHash, Err: fmt.Errorf("%v", r)}
		}
	}()

	p := d.params
	return argon2.IDKey(phrase, salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength), nil
}
