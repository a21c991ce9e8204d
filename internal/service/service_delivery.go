// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/lazypass/lazypass/internal/clipboard"
	"github.com/lazypass/lazypass/internal/logger"
	"github.com/lazypass/lazypass/internal/typist"
)

type deliveryService struct {
	guard  *clipboard.Guard
	typist typist.Typist

	logger *logger.Logger
}

func NewDeliveryService(guard *clipboard.Guard, typist typist.Typist, logger *logger.Logger) DeliveryService {
	return &deliveryService{
		guard:  guard,
		typist: typist,
		logger: logger,
	}
}

func (s *deliveryService) Copy(text string) error {
	if text == "" {
		return ErrNothingToDeliver
	}
	if err := s.guard.Deliver(text); err != nil {
		s.logger.Warn().Err(err).Msg("copy to clipboard failed")
		return fmt.Errorf("copy password: %w", err)
	}
	s.logger.Debug().Dur("clear_after", s.guard.Delay()).Msg("password copied")
	return nil
}

func (s *deliveryService) Type(ctx context.Context, text string) error {
	if text == "" {
		return ErrNothingToDeliver
	}
	if err := s.typist.Type(ctx, text); err != nil {
		s.logger.Warn().Err(err).Msg("typing password failed")
		return fmt.Errorf("type password: %w", err)
	}
	s.logger.Debug().Msg("password typed")
	return nil
}

func (s *deliveryService) Wait() {
	s.guard.Wait()
}

func (s *deliveryService) CanCopy() bool {
	return s.guard.Available()
}

func (s *deliveryService) CanType() bool {
	return s.typist.Available()
}
