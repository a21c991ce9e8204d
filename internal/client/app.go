// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/lazypass/lazypass/internal/clipboard"
	"github.com/lazypass/lazypass/internal/config"
	"github.com/lazypass/lazypass/internal/logger"
	"github.com/lazypass/lazypass/internal/service"
	"github.com/lazypass/lazypass/internal/tui"
	"github.com/lazypass/lazypass/internal/typist"
	"github.com/lazypass/lazypass/internal/workers"
)

// ErrEmptyPhrase is returned by the command line modes for an empty phrase.
var ErrEmptyPhrase = errors.New("empty phrase")

type closer interface {
	Close() error
}

type App struct {
	mode      string
	services  *service.Services
	ui        UI
	prompt    Prompter
	pool      *workers.Pool
	keeper    closer
	typeDelay time.Duration
	out       io.Writer
	status    io.Writer

	logger *logger.Logger
}

// Deps are the collaborators of App. UI is only needed in config.ModeTUI and
// Prompt only in the command line modes.
type Deps struct {
	Services  *service.Services
	UI        UI
	Prompt    Prompter
	Pool      *workers.Pool
	Keeper    closer
	TypeDelay time.Duration
	// Out receives the password in config.ModePrint.
	Out io.Writer
	// Status receives progress messages for the user.
	Status io.Writer
}

func NewApp(mode string, deps Deps, logger *logger.Logger) (*App, error) {
	if deps.Services == nil || deps.Pool == nil || deps.Keeper == nil {
		return nil, errors.New("client: services, pool and keeper are required")
	}
	if mode == config.ModeTUI && deps.UI == nil {
		return nil, errors.New("client: ui is required in tui mode")
	}
	if mode != config.ModeTUI && deps.Prompt == nil {
		return nil, errors.New("client: prompt is required in command line modes")
	}
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	if deps.Status == nil {
		deps.Status = io.Discard
	}

	return &App{
		mode:      mode,
		services:  deps.Services,
		ui:        deps.UI,
		prompt:    deps.Prompt,
		pool:      deps.Pool,
		keeper:    deps.Keeper,
		typeDelay: deps.TypeDelay,
		out:       deps.Out,
		status:    deps.Status,
		logger:    logger,
	}, nil
}

// Run executes the configured mode and then shuts down.
func (a *App) Run(ctx context.Context) (err error) {
	defer a.shutdown()
	ctx = a.logger.WithContext(ctx)

	a.logger.Info().Str("mode", a.mode).Bool("pepper", a.services.PasswordService.Ready()).Msg("starting")

	switch a.mode {
	case config.ModeTUI:
		err = a.ui.Run(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			err = nil
		}
	case config.ModePrint:
		err = a.runPrint(ctx)
	case config.ModeCopy:
		err = a.runCopy(ctx)
	case config.ModeType:
		err = a.runType(ctx)
	default:
		err = fmt.Errorf("unknown mode %q", a.mode)
	}
	return err
}

func (a *App) generate(ctx context.Context) (string, error) {
	phrase, err := a.prompt.ReadPhrase("Phrase: ")
	if err != nil {
		return "", fmt.Errorf("read phrase: %w", err)
	}
	if phrase == "" {
		return "", ErrEmptyPhrase
	}
	return a.services.PasswordService.Generate(ctx, phrase)
}

func (a *App) runPrint(ctx context.Context) error {
	password, err := a.generate(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, password)
	return err
}

// runCopy and runType check the backend before asking for the phrase, so a
// missing tool is reported without a derivation.
func (a *App) runCopy(ctx context.Context) error {
	if !a.services.DeliveryService.CanCopy() {
		return fmt.Errorf("copy password: %w", &clipboard.ClipboardError{Op: clipboard.OpWrite, Err: clipboard.ErrUnsupported})
	}
	password, err := a.generate(ctx)
	if err != nil {
		return err
	}
	if err = a.services.DeliveryService.Copy(password); err != nil {
		return err
	}
	fmt.Fprintln(a.status, "Copied to clipboard, waiting for it to be cleared...")
	return nil
}

func (a *App) runType(ctx context.Context) error {
	if !a.services.DeliveryService.CanType() {
		return fmt.Errorf("type password: %w", typist.ErrUnavailable)
	}
	password, err := a.generate(ctx)
	if err != nil {
		return err
	}

	if a.typeDelay > 0 {
		fmt.Fprintf(a.status, "Typing in %s, focus the target window...\n", a.typeDelay)
		timer := time.NewTimer(a.typeDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return a.services.DeliveryService.Type(ctx, password)
}

// shutdown waits for running derivations and scheduled clipboard clears,
// then destroys the vault.
func (a *App) shutdown() {
	a.pool.Close()
	a.services.DeliveryService.Wait()
	if err := a.keeper.Close(); err != nil {
		a.logger.Error().Err(err).Msg("destroy vault")
	}
	a.logger.Info().Msg("stopped")
}
