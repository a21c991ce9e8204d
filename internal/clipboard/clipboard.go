// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

//go:generate mockgen -source=clipboard.go -destination=../mock/clipboard_mock.go -package=mock

import "github.com/atotto/clipboard"

// Clipboard is the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// availability is implemented by clipboards that can tell up front whether
// a backend exists.
type availability interface {
	Available() bool
}

type system struct{}

// System returns the clipboard of the running desktop session. On Linux it
// needs xclip, xsel or wl-clipboard on PATH.
func System() Clipboard {
	return system{}
}

func (system) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (system) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

func (system) Available() bool {
	return !Unsupported()
}

// Unsupported reports whether the platform has no usable clipboard backend.
func Unsupported() bool {
	return clipboard.Unsupported
}
