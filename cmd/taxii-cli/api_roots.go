package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/MKhiriev/go-taxii/models"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newAPIRootCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api-root",
		Short: "Manage API roots",
	}

	var (
		description string
		isDefault   bool
		isPublic    bool
	)
	add := &cobra.Command{
		Use:   "add [title]",
		Short: "Create an API root",
		Long:  `Create an API root. Marking it as default clears the flag on every other root.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := env.services.DirectoryService.CreateAPIRoot(cmd.Context(), operator, models.APIRoot{
				Title:       args[0],
				Description: optional(description),
				IsDefault:   isDefault,
				IsPublic:    isPublic,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), root.ID)
			return nil
		},
	}
	add.Flags().StringVar(&description, "description", "", "Description")
	add.Flags().BoolVar(&isDefault, "default", false, "Make this the default API root")
	add.Flags().BoolVar(&isPublic, "public", false, "Allow anonymous access to the root")

	list := &cobra.Command{
		Use:   "list",
		Short: "List API roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			roots, err := env.services.DirectoryService.ListAPIRoots(cmd.Context(), operator)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tDEFAULT\tPUBLIC")
			for _, root := range roots {
				fmt.Fprintf(tw, "%s\t%s\t%t\t%t\n", root.ID, root.Title, root.IsDefault, root.IsPublic)
			}
			return tw.Flush()
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}

// resolveAPIRoot accepts an API root id or title.
func resolveAPIRoot(ctx context.Context, env *environment, value string) (uuid.UUID, error) {
	if id, err := uuid.Parse(value); err == nil {
		return id, nil
	}

	roots, err := env.services.DirectoryService.ListAPIRoots(ctx, operator)
	if err != nil {
		return uuid.Nil, err
	}
	for _, root := range roots {
		if root.Title == value {
			return root.ID, nil
		}
	}
	return uuid.Nil, fmt.Errorf("%w: %q", errNoAPIRoot, value)
}
