package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-taxii/internal/config"
	"github.com/spf13/cobra"
)

func newJobsCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Manage ingestion jobs",
	}

	var olderThan time.Duration
	cleanup := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete complete jobs older than the retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := env.services.IngestService.CleanupJobs(cmd.Context(), olderThan)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d jobs removed\n", removed)
			return nil
		},
	}
	cleanup.Flags().DurationVar(&olderThan, "older-than", config.DefaultJobRetention, "Retention period")

	cmd.AddCommand(cleanup)
	return cmd
}
