// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal frontend of lazypass.
package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lazypass/lazypass/internal/logger"
	"github.com/lazypass/lazypass/internal/service"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services   *service.Services
	clearDelay time.Duration
	typeDelay  time.Duration

	logger *logger.Logger
}

func New(services *service.Services, clearDelay, typeDelay time.Duration, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{
		services:   services,
		clearDelay: clearDelay,
		typeDelay:  typeDelay,
		logger:     logger,
	}, nil
}

// Run shows the generator screen until the user quits. A Ctrl+C quit is
// reported as ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	generator := NewGeneratorModel(ctx, t.services, t.clearDelay, t.typeDelay)
	root := NewRootModel(generator, t.services.AppInfoService.GetBuildInfo(ctx))

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
