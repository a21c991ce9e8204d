// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secret

import "sync"

// Keeper is the write-once owner of the process vault. It replaces a global
// singleton: the keeper is created in main and injected into every component
// that needs the pepper.
type Keeper struct {
	mu    sync.RWMutex
	vault *Vault
	used  bool
}

// NewKeeper returns an empty keeper. Until Init succeeds every Vault call
// returns [ErrVaultUninitialized].
func NewKeeper() *Keeper {
	return &Keeper{}
}

// Init obfuscates pepper into a new vault. Only the first call may succeed;
// every later call returns [ErrDoubleInitialization], even when the first
// one failed or the vault was closed since. Two vaults in one process mean
// the pepper was handled inconsistently.
//
// Init does not wipe pepper, that is the caller's job.
func (k *Keeper) Init(pepper []byte) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.used {
		return ErrDoubleInitialization
	}
	k.used = true

	v, err := NewVault(pepper)
	if err != nil {
		return err
	}
	k.vault = v
	return nil
}

// Vault returns the initialized vault or [ErrVaultUninitialized].
func (k *Keeper) Vault() (*Vault, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.vault == nil {
		return nil, ErrVaultUninitialized
	}
	return k.vault, nil
}

// Ready reports whether a vault is available.
func (k *Keeper) Ready() bool {
	_, err := k.Vault()
	return err == nil
}

// Initialized reports whether Init was already called, successfully or
// not, or the keeper was closed.
func (k *Keeper) Initialized() bool {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.used
}

// Close destroys the vault. After Close the keeper behaves as uninitialized
// and cannot be initialized again.
func (k *Keeper) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.vault != nil {
		k.vault.Destroy()
		k.vault = nil
	}
	k.used = true
	return nil
}
