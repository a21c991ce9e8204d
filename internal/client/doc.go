// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the lazypass process lifecycle.
//
// It runs either the terminal UI or a one-shot command line mode and, on
// every exit path, waits for running derivations and pending clipboard
// clears before destroying the vault.
package client
