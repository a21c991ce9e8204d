// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	edit      key.Binding
	copy      key.Binding
	typeText  key.Binding
	reveal    key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	edit:      key.NewBinding(key.WithKeys("e", "/")),
	copy:      key.NewBinding(key.WithKeys("c")),
	typeText:  key.NewBinding(key.WithKeys("t")),
	reveal:    key.NewBinding(key.WithKeys("s")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
}
