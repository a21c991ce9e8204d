// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard places derived passwords on the system clipboard and
// clears them again after a delay, unless the user has copied something
// else in the meantime.
package clipboard
