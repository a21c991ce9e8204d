// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package typist types text into the focused window by driving an external
// keystroke injection tool.
package typist

//go:generate mockgen -source=typist.go -destination=../mock/typist_mock.go -package=mock

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/lazypass/lazypass/internal/logger"
	"github.com/lazypass/lazypass/internal/secret"
)

// DefaultDelay gives the user time to focus the target window before typing
// starts.
const DefaultDelay = 3 * time.Second

// Typist types text into whatever window has keyboard focus.
type Typist interface {
	Type(ctx context.Context, text string) error

	// Available reports whether typing can work in this session.
	Available() bool
}

// Backend is an external command that reads the text to type from stdin.
// Text is never passed on the command line where other users could read it.
type Backend struct {
	Name string
	Args []string
	// Env, when set, must be present in the environment for the backend to
	// be considered.
	Env string
}

// Wtype types on Wayland compositors.
var Wtype = Backend{Name: "wtype", Args: []string{"-"}, Env: "WAYLAND_DISPLAY"}

// Xdotool types on X11.
var Xdotool = Backend{Name: "xdotool", Args: []string{"type", "--clearmodifiers", "--file", "-"}, Env: "DISPLAY"}

// DefaultBackends are tried in order.
var DefaultBackends = []Backend{Wtype, Xdotool}

// Exec types with the first available backend.
type Exec struct {
	backends []Backend
	lookPath func(string) (string, error)
	getenv   func(string) string
}

var _ Typist = (*Exec)(nil)

// New returns an Exec typist over backends, or DefaultBackends when none are
// given.
func New(backends ...Backend) *Exec {
	if len(backends) == 0 {
		backends = DefaultBackends
	}
	return &Exec{
		backends: backends,
		lookPath: exec.LookPath,
		getenv:   os.Getenv,
	}
}

// Available reports whether some backend can be used.
func (e *Exec) Available() bool {
	_, _, err := e.resolve()
	return err == nil
}

func (e *Exec) resolve() (Backend, string, error) {
	for _, b := range e.backends {
		if b.Env != "" && e.getenv(b.Env) == "" {
			continue
		}
		path, err := e.lookPath(b.Name)
		if err != nil {
			continue
		}
		return b, path, nil
	}
	return Backend{}, "", ErrUnavailable
}

// Type runs the backend with text on its stdin and waits for it to exit.
func (e *Exec) Type(ctx context.Context, text string) error {
	b, path, err := e.resolve()
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	log.Debug().Str("backend", b.Name).Msg("typing")

	input := []byte(text)
	defer secret.Wipe(input)

	cmd := exec.CommandContext(ctx, path, b.Args...)
	cmd.Stdin = bytes.NewReader(input)
	if err = cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(ctxErr, err)
		}
		return &TypeError{Backend: b.Name, Err: err}
	}
	return nil
}
