// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs blocking jobs off the caller's goroutine with a
// bound on how many run at once.
//
// A password derivation may allocate a gigabyte, so the pool size is the
// number of derivations the process is allowed to hold in memory at the same
// time.
package workers
