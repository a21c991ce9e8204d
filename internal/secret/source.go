// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secret

import (
	"fmt"
	"os"
)

// DefaultPepperEnv is the environment variable the pepper is read from
// unless configured otherwise.
const DefaultPepperEnv = "SALT_PHRASE"

// Source is one place the pepper can be acquired from.
type Source interface {
	// Name identifies the source in logs. It never contains the value.
	Name() string

	// Lookup returns a fresh copy of the value. An empty value counts as
	// absent. The caller owns the slice and wipes it.
	Lookup() ([]byte, bool)

	// Purge removes the value from the source so later code and child
	// processes cannot enumerate it.
	Purge() error
}

type envSource struct {
	name string
}

// EnvSource reads the pepper from the environment variable name. Purge
// unsets the variable.
func EnvSource(name string) Source {
	return &envSource{name: name}
}

func (s *envSource) Name() string {
	return "env:" + s.name
}

func (s *envSource) Lookup() ([]byte, bool) {
	v, ok := os.LookupEnv(s.name)
	if !ok || v == "" {
		return nil, false
	}
	return []byte(v), true
}

func (s *envSource) Purge() error {
	if err := os.Unsetenv(s.name); err != nil {
		return fmt.Errorf("unset %s: %w", s.name, err)
	}
	return nil
}

type embeddedSource struct {
	value *string
}

// EmbeddedSource reads the pepper from a string injected at build time, for
// example with -ldflags "-X main.buildPepper=...". Purge clears the variable.
//
// Go strings are immutable and link-time values live in read-only memory, so
// the original bytes cannot be overwritten; only the reference is dropped.
func EmbeddedSource(value *string) Source {
	return &embeddedSource{value: value}
}

func (s *embeddedSource) Name() string {
	return "build"
}

func (s *embeddedSource) Lookup() ([]byte, bool) {
	if s.value == nil || *s.value == "" {
		return nil, false
	}
	return []byte(*s.value), true
}

func (s *embeddedSource) Purge() error {
	if s.value != nil {
		*s.value = ""
	}
	return nil
}
