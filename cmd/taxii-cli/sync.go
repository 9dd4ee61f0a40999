// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/MKhiriev/go-taxii/internal/service"
	"github.com/MKhiriev/go-taxii/models"
	"github.com/spf13/cobra"
)

func newSyncCommand(env *environment) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "sync [config.yaml]",
		Short: "Reconcile services, collections and accounts with a YAML document",
		Long: `Apply a desired-state document in one transaction. Every reference is
checked first; if any is unresolved nothing is written and each violation is
listed. Running the same document twice changes nothing the second time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("error reading %s: %w", args[0], err)
			}

			run, outcome := env.services.SyncService.Sync, "applied"
			if dryRun {
				run, outcome = env.services.SyncService.DryRun, "dry run, nothing was written"
			}

			report, err := run(cmd.Context(), data)
			if err != nil {
				printViolations(cmd.ErrOrStderr(), err)
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			fmt.Fprintln(cmd.OutOrStdout(), outcome)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Check the document against the database and report changes without writing them")

	return cmd
}

func printViolations(w io.Writer, err error) {
	var configErr *service.ConfigValidationError
	if !errors.As(err, &configErr) {
		return
	}
	fmt.Fprintf(w, "%d unresolved references, nothing was written:\n", len(configErr.Violations))
	for _, v := range configErr.Violations {
		fmt.Fprintf(w, "  - %s\n", v)
	}
}

func printReport(w io.Writer, report models.SyncReport) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tCREATED\tUPDATED\tREMOVED\tDISABLED")
	for _, row := range []struct {
		kind   string
		counts models.SyncCounts
	}{
		{"services", report.Services},
		{"collections", report.Collections},
		{"accounts", report.Accounts},
	} {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\n", row.kind, row.counts.Created, row.counts.Updated, row.counts.Removed, row.counts.Disabled)
	}
	tw.Flush()
}
