// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package typist

import (
	"errors"
	"fmt"
)

// ErrUnavailable means no keystroke injection backend is installed for the
// current session.
var ErrUnavailable = errors.New("no keystroke injection backend available")

// TypeError reports a backend that ran and failed. It never carries the
// typed text.
type TypeError struct {
	Backend string
	Err     error
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("typing with %s failed: %v", e.Backend, e.Err)
}

func (e *TypeError) Unwrap() error {
	return e.Err
}
