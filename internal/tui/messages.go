// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type generatedMsg struct {
	seq      int
	password string
	err      error
}

type copiedMsg struct {
	err error
}

type typeCountdownMsg struct {
	remaining int
}

type typedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
