// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lazypass/lazypass/internal/crypto"
	"github.com/lazypass/lazypass/internal/logger"
	"github.com/lazypass/lazypass/internal/utils"
	"github.com/lazypass/lazypass/internal/workers"
)

type passwordService struct {
	vaults  crypto.VaultProvider
	deriver crypto.Deriver
	pool    *workers.Pool
	ids     *utils.UUIDGenerator

	logger *logger.Logger
}

func NewPasswordService(vaults crypto.VaultProvider, deriver crypto.Deriver, pool *workers.Pool, logger *logger.Logger) PasswordService {
	return &passwordService{
		vaults:  vaults,
		deriver: deriver,
		pool:    pool,
		ids:     utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

func (s *passwordService) Generate(ctx context.Context, input string) (string, error) {
	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = s.ids.Generate()
		ctx = utils.WithRequestID(ctx, requestID)
	}
	log := s.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("request_id", requestID)
	})
	ctx = log.WithContext(ctx)
	started := time.Now()

	log.Debug().Int("pool_size", s.pool.Size()).Msg("password derivation queued")

	password, err := workers.Do(ctx, s.pool, func() (string, error) {
		return s.deriver.Derive(input, s.vaults)
	})
	if err != nil {
		log.Warn().Err(err).Dur("elapsed", time.Since(started)).Msg("password derivation failed")
		return "", fmt.Errorf("generate password: %w", err)
	}

	log.Debug().Dur("elapsed", time.Since(started)).Msg("password derived")
	return password, nil
}

func (s *passwordService) Ready() bool {
	_, err := s.vaults.Vault()
	return err == nil
}
