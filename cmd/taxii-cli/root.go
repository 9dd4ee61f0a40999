// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-taxii/internal/cache"
	"github.com/MKhiriev/go-taxii/internal/config"
	"github.com/MKhiriev/go-taxii/internal/logger"
	"github.com/MKhiriev/go-taxii/internal/service"
	"github.com/MKhiriev/go-taxii/internal/store"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/spf13/cobra"
)

// operator is the principal of administrative commands.
var operator = &models.Account{Username: "taxii-cli", IsAdmin: true}

// environment holds the collaborators shared by every command. Commands
// built with a pre-filled environment skip the connection step.
type environment struct {
	overrides config.StructuredConfig

	log         *logger.Logger
	db          *store.DB
	invalidator *cache.Invalidator
	services    *service.Services
}

func newRootCommand(env *environment) *cobra.Command {
	root := &cobra.Command{
		Use:          "taxii-cli",
		Short:        "Administer a go-taxii server",
		Long:         `Apply configuration documents, run migrations and manage API roots, collections, jobs and accounts of a go-taxii database.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := env.connect(cmd.Context()); err != nil {
				return err
			}
			if env.log != nil {
				cmd.SetContext(env.log.WithContext(cmd.Context()))
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return env.close()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&env.overrides.Storage.DB.DSN, "database-uri", "d", "", "Database DSN")
	flags.StringVarP(&env.overrides.JSONFilePath, "config", "c", "", "JSON config file path")
	flags.StringVar(&env.overrides.Storage.Redis.Address, "redis", "", "Redis address used to announce directory changes")
	flags.StringVar(&env.overrides.Log.Level, "log-level", "warn", "Log level")

	root.AddCommand(
		newMigrateCommand(env),
		newSyncCommand(env),
		newAPIRootCommand(env),
		newCollectionCommand(env),
		newJobsCommand(env),
		newAccountCommand(env),
	)

	return root
}

func (env *environment) connect(ctx context.Context) error {
	if env.services != nil {
		return nil
	}

	cfg, err := config.GetStructuredConfigWith(&env.overrides)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	env.log = logger.NewConsoleLogger("taxii-cli", cfg.Log.Level)

	env.db, err = store.NewConnectPostgres(ctx, cfg.Storage.DB, env.log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}

	var notifier cache.Notifier = cache.NopNotifier{}
	if cfg.Storage.Redis.Address != "" {
		env.invalidator = cache.NewInvalidator(cfg.Storage.Redis, env.log)
		notifier = env.invalidator
	}

	env.services, err = service.NewServices(store.NewRepositories(env.db, env.log), notifier, *cfg, env.log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}
	return nil
}

func (env *environment) close() error {
	var errs []error
	if env.invalidator != nil {
		errs = append(errs, env.invalidator.Close())
	}
	if env.db != nil {
		errs = append(errs, env.db.Close())
	}
	return errors.Join(errs...)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
