// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lazypass/lazypass/models"
)

// RootModel wraps the generator screen:
// 1) handles global Ctrl+C quit
// 2) toggles the build info window
// 3) delegates all other messages to the generator
type RootModel struct {
	generator *GeneratorModel
	buildInfo models.AppBuildInfo

	quitByUser    bool
	showBuildInfo bool
}

// NewRootModel wraps generator.
func NewRootModel(generator *GeneratorModel, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		generator: generator,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.generator.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.forceQuit):
			r.quitByUser = true
			return r, tea.Quit
		case r.showBuildInfo:
			if key.Matches(k, keys.esc, keys.buildInfo) {
				r.showBuildInfo = false
			}
			return r, nil
		case key.Matches(k, keys.buildInfo) && !r.generator.editing() && r.generator.overlay == nil:
			r.showBuildInfo = true
			return r, nil
		}
	}

	_, cmd := r.generator.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	return r.generator.View()
}
