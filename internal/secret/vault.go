// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secret

import (
	"crypto/rand"
	"fmt"
	"io"
	"runtime"
	"sync"

	"github.com/awnumar/memguard"
)

// keyAttempts bounds the retries when the random source returns an all-zero
// key, which would leave the pepper unobfuscated.
const keyAttempts = 8

// Vault keeps the pepper XOR-ed with a random key of the same length:
// obfuscated[i] == pepper[i] ^ key[i].
//
// The buffers sit behind a pointer, so a copied Vault value shares them and
// fmt only ever reaches the redacting methods below.
type Vault struct {
	state *vaultState
}

// vaultState holds the buffers. Both are immutable after construction; the
// lock only orders Reveal against Destroy.
type vaultState struct {
	mu         sync.RWMutex
	obfuscated []byte
	key        []byte
	destroyed  bool
}

// NewVault builds a Vault from pepper. The caller keeps ownership of pepper
// and is expected to wipe it right after this call; the vault does not keep
// a reference to it.
func NewVault(pepper []byte) (*Vault, error) {
	return newVault(pepper, rand.Reader)
}

func newVault(pepper []byte, random io.Reader) (*Vault, error) {
	if len(pepper) == 0 {
		return nil, ErrEmptyPepper
	}

	key, err := generateKey(random, len(pepper))
	if err != nil {
		return nil, err
	}

	obfuscated := make([]byte, len(pepper))
	for i := range pepper {
		obfuscated[i] = pepper[i] ^ key[i]
	}

	st := &vaultState{
		obfuscated: obfuscated,
		key:        key,
	}
	runtime.SetFinalizer(st, (*vaultState).destroy)

	return &Vault{state: st}, nil
}

func generateKey(random io.Reader, n int) ([]byte, error) {
	key := make([]byte, n)
	for range keyAttempts {
		if _, err := io.ReadFull(random, key); err != nil {
			Wipe(key)
			return nil, fmt.Errorf("generate obfuscation key: %w", err)
		}
		if !isZero(key) {
			return key, nil
		}
	}
	return nil, fmt.Errorf("generate obfuscation key: random source returned only zeros")
}

// Reveal rebuilds the plaintext pepper straight into a fresh locked buffer.
// The returned Pepper must be wiped by the caller.
func (v *Vault) Reveal() (p *Pepper, err error) {
	if v == nil || v.state == nil {
		return nil, ErrVaultDestroyed
	}

	st := v.state
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.destroyed {
		return nil, ErrVaultDestroyed
	}

	// memguard panics when it cannot map or lock memory.
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = fmt.Errorf("allocate locked buffer: %v", r)
		}
	}()

	buf := memguard.NewBuffer(len(st.obfuscated))
	out := buf.Bytes()
	for i := range st.obfuscated {
		out[i] = st.obfuscated[i] ^ st.key[i]
	}

	return &Pepper{buf: buf}, nil
}

// Len returns the pepper length in bytes, or 0 once the vault is destroyed.
// It does not reveal anything.
func (v *Vault) Len() int {
	if v == nil || v.state == nil {
		return 0
	}
	v.state.mu.RLock()
	defer v.state.mu.RUnlock()
	return len(v.state.obfuscated)
}

// Destroy zeroes both buffers and releases them. It is idempotent; the
// buffers are also destroyed by a finalizer once no Vault refers to them.
func (v *Vault) Destroy() {
	if v == nil || v.state == nil {
		return
	}
	v.state.destroy()
}

func (st *vaultState) destroy() {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.destroyed {
		return
	}
	WipeAll(st.obfuscated, st.key)
	st.obfuscated = nil
	st.key = nil
	st.destroyed = true
	runtime.SetFinalizer(st, nil)
}

func (v Vault) String() string {
	return "secret.Vault{" + redacted + "}"
}

func (v Vault) GoString() string {
	return v.String()
}

func (v Vault) Format(f fmt.State, _ rune) {
	_, _ = f.Write([]byte(v.String()))
}
