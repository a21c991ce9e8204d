// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strconv"

	"github.com/lazypass/lazypass/internal/config"
)

// Argon2 bounds enforced before a derivation starts. golang.org/x/crypto
// panics on some of these and silently accepts others.
const (
	MinIterations  = 1
	MinParallelism = 1
	MinKeyLength   = 4
	MinPepperLen   = 8
	// MemoryPerLane is the minimum memory, in KiB, per lane.
	MemoryPerLane = 8
)

// Params are the Argon2id cost parameters. They are fixed for the process:
// two derivations reproduce the same password only if every field matches.
type Params struct {
	// Memory is the memory cost in KiB.
	Memory uint32
	// Iterations is the number of passes over memory.
	Iterations uint32
	// Parallelism is the number of lanes.
	Parallelism uint8
	// KeyLength is the output length in bytes.
	KeyLength uint32
}

// DefaultParams are the parameters every existing password was derived
// with: 1 GiB of memory, 2 passes, 2 lanes and a 64 byte output.
var DefaultParams = Params{
	Memory:      1024 * 1024,
	Iterations:  2,
	Parallelism: 2,
	KeyLength:   64,
}

// TestParams are cheap parameters for tests and fixtures. Never use them
// for real passwords.
var TestParams = Params{
	Memory:      64,
	Iterations:  1,
	Parallelism: 1,
	KeyLength:   32,
}

// ParamsFromConfig converts the KDF section of the configuration.
func ParamsFromConfig(cfg config.KDF) Params {
	return Params{
		Memory:      cfg.Memory,
		Iterations:  cfg.Iterations,
		Parallelism: cfg.Parallelism,
		KeyLength:   cfg.KeyLength,
	}
}

// Validate reports the first parameter Argon2id would reject as a
// *ParameterError.
func (p Params) Validate() error {
	if p.Iterations < MinIterations {
		return newParameterError("iterations", u(p.Iterations), "must be at least 1")
	}
	if p.Parallelism < MinParallelism {
		return newParameterError("parallelism", u(uint32(p.Parallelism)), "must be at least 1")
	}
	if p.Memory < MemoryPerLane*uint32(p.Parallelism) {
		return newParameterError("memory", u(p.Memory),
			"must be at least "+u(MemoryPerLane*uint32(p.Parallelism))+" KiB for "+u(uint32(p.Parallelism))+" lanes")
	}
	if p.KeyLength < MinKeyLength {
		return newParameterError("key length", u(p.KeyLength), "must be at least 4 bytes")
	}
	return nil
}

// HexLength is the length of the encoded password.
func (p Params) HexLength() int {
	return 2 * int(p.KeyLength)
}

func validatePepperLength(n int) error {
	if n < MinPepperLen {
		return newParameterError("pepper length", strconv.Itoa(n), "must be at least 8 bytes")
	}
	return nil
}

func u(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}
