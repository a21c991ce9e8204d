// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"errors"
	"fmt"
)

const (
	OpRead  = "read"
	OpWrite = "write"
)

// ErrUnsupported means no clipboard backend was found.
var ErrUnsupported = errors.New("no clipboard backend available")

// ClipboardError reports a failed clipboard access. It never carries the
// clipboard contents.
type ClipboardError struct {
	Op  string
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("clipboard %s failed: %v", e.Op, e.Err)
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}
