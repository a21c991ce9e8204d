// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/lazypass/lazypass/models"
)

// PasswordService derives passwords from user phrases.
type PasswordService interface {
	// Generate derives the password for input on the worker pool and waits
	// for it. If ctx is cancelled Generate returns ctx.Err() and the
	// derivation still finishes in the background, its result discarded.
	//
	// Without a pepper every call fails with secret.ErrVaultUninitialized.
	Generate(ctx context.Context, input string) (string, error)

	// Ready reports whether a pepper was acquired at startup.
	Ready() bool
}

// DeliveryService hands derived passwords to the user.
type DeliveryService interface {
	// Copy places text on the clipboard and schedules its conditional clear.
	Copy(text string) error

	// Type types text into the focused window.
	Type(ctx context.Context, text string) error

	// Wait blocks until every scheduled clipboard clear has run.
	Wait()

	// CanCopy reports whether a clipboard backend exists.
	CanCopy() bool

	// CanType reports whether a keystroke injection backend exists.
	CanType() bool
}

// AppInfoService reports information about the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
