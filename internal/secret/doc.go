// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package secret holds the confidential pepper for the lifetime of the
// process.
//
// The pepper is never kept as a single contiguous plaintext buffer. A [Vault]
// stores it XOR-ed with a random key of the same length and rebuilds the
// plaintext only for the duration of a [Vault.Reveal] call. The obfuscation
// adds no cryptographic strength; it narrows the window in which a naive
// memory scan can find the pepper.
//
// A [Keeper] is the write-once slot that owns the process vault. It is built
// by an [Initializer] at startup, which reads the pepper from a runtime
// [Source] (usually an environment variable) with a build-time fallback,
// obfuscates it and purges every plaintext copy it can reach.
package secret
