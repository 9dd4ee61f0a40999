package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/MKhiriev/go-taxii/models"
	"github.com/spf13/cobra"
)

func newCollectionCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collection",
		Short: "Manage collections",
	}

	var (
		apiRoot     string
		description string
		alias       string
		isPublic    bool
		publicWrite bool
	)
	add := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a collection in an API root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiRootID, err := resolveAPIRoot(cmd.Context(), env, apiRoot)
			if err != nil {
				return err
			}

			collection, err := env.services.DirectoryService.CreateCollection(cmd.Context(), operator, models.Collection{
				APIRootID:     apiRootID,
				Title:         args[0],
				Description:   optional(description),
				Alias:         optional(alias),
				IsPublic:      isPublic,
				IsPublicWrite: publicWrite,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), collection.ID)
			return nil
		},
	}
	add.Flags().StringVar(&apiRoot, "api-root", "", "API root id or title")
	add.Flags().StringVar(&description, "description", "", "Description")
	add.Flags().StringVar(&alias, "alias", "", "Alias, unique within the API root")
	add.Flags().BoolVar(&isPublic, "public", false, "Allow anonymous reads")
	add.Flags().BoolVar(&publicWrite, "public-write", false, "Allow anonymous writes")
	_ = add.MarkFlagRequired("api-root")

	var listRoot string
	list := &cobra.Command{
		Use:   "list",
		Short: "List the collections of an API root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiRootID, err := resolveAPIRoot(cmd.Context(), env, listRoot)
			if err != nil {
				return err
			}

			views, err := env.services.DirectoryService.ListCollections(cmd.Context(), operator, apiRootID)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tALIAS\tPUBLIC\tPUBLIC WRITE")
			for _, view := range views {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%t\n", view.ID, view.Title, deref(view.Alias), view.IsPublic, view.IsPublicWrite)
			}
			return tw.Flush()
		},
	}
	list.Flags().StringVar(&listRoot, "api-root", "", "API root id or title")
	_ = list.MarkFlagRequired("api-root")

	cmd.AddCommand(add, list)
	return cmd
}
