// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secret

import (
	"errors"
	"fmt"

	"github.com/lazypass/lazypass/internal/logger"
)

// State is a step of the startup sequence.
type State int

const (
	StateAcquire State = iota
	StateObfuscate
	StatePurge
	StateReady
	StateDegraded
)

func (s State) String() string {
	switch s {
	case StateAcquire:
		return "acquire"
	case StateObfuscate:
		return "obfuscate"
	case StatePurge:
		return "purge"
	case StateReady:
		return "ready"
	case StateDegraded:
		return "degraded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Initializer runs the one-time startup sequence that moves the pepper from
// its sources into a [Keeper].
type Initializer struct {
	sources []Source
	logger  *logger.Logger
}

// NewInitializer returns an initializer that tries sources in order. The
// usual setup is the runtime environment first and the build-time value as
// the fallback.
func NewInitializer(log *logger.Logger, sources ...Source) *Initializer {
	return &Initializer{
		sources: sources,
		logger:  log,
	}
}

// Run acquires the pepper, builds the vault in keeper and purges every
// plaintext copy it knows about.
//
// A missing pepper is not an error: Run returns [StateDegraded] and the
// keeper stays uninitialized, so derivation fails on use with
// [ErrVaultUninitialized]. [ErrDoubleInitialization] is returned as is and
// must abort startup.
func (i *Initializer) Run(keeper *Keeper) (State, error) {
	if keeper.Initialized() {
		i.purge()
		i.logger.Error().
			Str("state", StateAcquire.String()).
			Bool("ready", keeper.Ready()).
			Msg("secret vault is already initialized")
		return StateAcquire, ErrDoubleInitialization
	}

	pepper, from := i.acquire()
	if pepper == nil {
		i.purge()
		i.logger.Warn().
			Str("state", StateDegraded.String()).
			Msg("pepper is not set in any source, password derivation is disabled")
		return StateDegraded, nil
	}

	i.logger.Debug().
		Str("state", StateObfuscate.String()).
		Str("source", from).
		Int("length", len(pepper)).
		Msg("pepper acquired")

	err := keeper.Init(pepper)
	Wipe(pepper)
	// every source is purged, including the fallbacks that were not used
	i.purge()

	if err != nil {
		if errors.Is(err, ErrDoubleInitialization) {
			return StateObfuscate, err
		}
		return StateObfuscate, fmt.Errorf("obfuscate pepper from %s: %w", from, err)
	}

	i.logger.Info().
		Str("state", StateReady.String()).
		Str("source", from).
		Msg("secret vault is ready")

	return StateReady, nil
}

func (i *Initializer) acquire() ([]byte, string) {
	for _, src := range i.sources {
		if v, ok := src.Lookup(); ok {
			return v, src.Name()
		}
	}
	return nil, ""
}

func (i *Initializer) purge() {
	failed := 0
	for _, src := range i.sources {
		if err := src.Purge(); err != nil {
			failed++
			i.logger.Warn().
				Err(err).
				Str("state", StatePurge.String()).
				Str("source", src.Name()).
				Msg("pepper source was not purged")
		}
	}
	i.logger.Debug().
		Str("state", StatePurge.String()).
		Int("failed", failed).
		Msg("pepper sources purged")
}
