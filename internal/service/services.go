// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/lazypass/lazypass/internal/clipboard"
	"github.com/lazypass/lazypass/internal/crypto"
	"github.com/lazypass/lazypass/internal/logger"
	"github.com/lazypass/lazypass/internal/typist"
	"github.com/lazypass/lazypass/internal/workers"
	"github.com/lazypass/lazypass/models"
)

type Services struct {
	PasswordService PasswordService
	DeliveryService DeliveryService
	AppInfoService  AppInfoService
}

// Deps are the collaborators NewServices wires together.
type Deps struct {
	Vaults    crypto.VaultProvider
	Deriver   crypto.Deriver
	Pool      *workers.Pool
	Guard     *clipboard.Guard
	Typist    typist.Typist
	BuildInfo models.AppBuildInfo
}

func NewServices(deps Deps, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(deps.BuildInfo, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		PasswordService: NewPasswordService(deps.Vaults, deps.Deriver, deps.Pool, logger),
		DeliveryService: NewDeliveryService(deps.Guard, deps.Typist, logger),
		AppInfoService:  appInfo,
	}, nil
}
