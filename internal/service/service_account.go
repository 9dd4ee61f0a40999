// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/store"
	"github.com/MKhiriev/go-taxii/models"
)

type accountService struct {
	accounts store.AccountRepository
	logger   *logger.Logger
}

// NewAccountService constructs an AccountService used by the admin CLI.
func NewAccountService(accounts store.AccountRepository, log *logger.Logger) AccountService {
	return &accountService{accounts: accounts, logger: log}
}

func (s *accountService) ListAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.accounts.ListAccounts(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "accountService.ListAccounts").Msg("listing accounts failed")
		return nil, mapStoreError(err)
	}
	return accounts, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	if err := s.accounts.DeleteAccount(ctx, username); err != nil {
		log.Err(err).Str("func", "accountService.DeleteAccount").Str("username", username).Msg("deleting account failed")
		return mapStoreError(err)
	}

	log.Info().Str("username", username).Msg("account deleted")
	return nil
}
