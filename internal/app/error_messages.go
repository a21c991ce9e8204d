// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer messages used by the
// lazypass frontends.
//
// All Msg* constants are human-readable strings shown to the user in place
// of a password when an operation fails. None of them is built from user
// input, so none of them can leak a phrase, a pepper or a password.
package app

import (
	"context"
	"errors"

	"github.com/lazypass/lazypass/internal/clipboard"
	"github.com/lazypass/lazypass/internal/crypto"
	"github.com/lazypass/lazypass/internal/secret"
	"github.com/lazypass/lazypass/internal/service"
	"github.com/lazypass/lazypass/internal/typist"
	"github.com/lazypass/lazypass/internal/workers"
)

const (
	// MsgVaultUninitialized is shown when no pepper was found at startup.
	MsgVaultUninitialized = "no pepper configured: set the pepper environment variable and restart"

	// MsgVaultDestroyed is shown when a request races application shutdown.
	MsgVaultDestroyed = "application is shutting down"

	// MsgInvalidParameters is shown for derivation parameters Argon2id
	// rejects. It points at a broken build or configuration.
	MsgInvalidParameters = "invalid derivation parameters, check the configuration"

	// MsgDerivationFailed is shown when the key derivation itself failed,
	// usually because the memory cost could not be allocated.
	MsgDerivationFailed = "password derivation failed"

	// MsgClipboardFailed is shown when the system clipboard is unavailable.
	MsgClipboardFailed = "could not access the clipboard"

	// MsgTypingUnavailable is shown when neither wtype nor xdotool is usable.
	MsgTypingUnavailable = "typing is not available: install wtype or xdotool"

	// MsgTypingFailed is shown when the typing backend ran and failed.
	MsgTypingFailed = "typing the password failed"

	// MsgNothingToDeliver is shown when copy or type is requested before a
	// password was generated.
	MsgNothingToDeliver = "generate a password first"

	// MsgCancelled is shown when the user abandoned a request.
	MsgCancelled = "cancelled"

	// MsgUnexpected is the fallback for errors without a dedicated message.
	MsgUnexpected = "unexpected error"
)

// UserMessage maps err to one of the Msg* constants. It returns "" for a nil
// error.
func UserMessage(err error) string {
	var (
		paramErr     *crypto.ParameterError
		derivErr     *crypto.DerivationError
		clipboardErr *clipboard.ClipboardError
		typeErr      *typist.TypeError
	)

	switch {
	case err == nil:
		return ""
	case errors.Is(err, secret.ErrVaultUninitialized):
		return MsgVaultUninitialized
	case errors.Is(err, secret.ErrVaultDestroyed), errors.Is(err, workers.ErrPoolClosed):
		return MsgVaultDestroyed
	case errors.As(err, &paramErr):
		return MsgInvalidParameters
	case errors.As(err, &derivErr):
		return MsgDerivationFailed
	case errors.As(err, &clipboardErr):
		return MsgClipboardFailed
	case errors.Is(err, typist.ErrUnavailable):
		return MsgTypingUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return MsgCancelled
	case errors.As(err, &typeErr):
		return MsgTypingFailed
	case errors.Is(err, service.ErrNothingToDeliver):
		return MsgNothingToDeliver
	default:
		return MsgUnexpected
	}
}
