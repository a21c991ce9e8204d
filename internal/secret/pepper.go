// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secret

import (
	"encoding/json"
	"fmt"

	"github.com/awnumar/memguard"
)

const redacted = "[REDACTED]"

// Pepper is a transient plaintext copy of the pepper returned by
// [Vault.Reveal]. The bytes live in a memguard.LockedBuffer: mlocked, fenced
// by guard pages and wiped on destruction. Pepper never renders its bytes
// through fmt, %v, %#v or JSON. The owner must call Wipe as soon as the bytes
// are no longer needed.
type Pepper struct {
	buf *memguard.LockedBuffer
}

// Bytes returns the underlying buffer. The slice is owned by the Pepper and
// is unmapped by Wipe; callers must not keep it.
func (p *Pepper) Bytes() []byte {
	if p == nil || p.buf == nil || !p.buf.IsAlive() {
		return nil
	}
	return p.buf.Bytes()
}

// Len returns the pepper length in bytes.
func (p *Pepper) Len() int {
	return len(p.Bytes())
}

// Wipe zeroes the buffer and releases it. Safe to call more than once.
func (p *Pepper) Wipe() {
	if p == nil || p.buf == nil {
		return
	}
	p.buf.Destroy()
	p.buf = nil
}

func (p Pepper) String() string {
	return redacted
}

func (p Pepper) GoString() string {
	return "secret.Pepper{" + redacted + "}"
}

// Format keeps every verb, including %x and %s, away from the raw bytes.
func (p Pepper) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		_, _ = f.Write([]byte(p.GoString()))
		return
	}
	_, _ = f.Write([]byte(redacted))
}

func (p Pepper) MarshalJSON() ([]byte, error) {
	return json.Marshal(redacted)
}
