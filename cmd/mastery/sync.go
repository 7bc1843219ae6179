package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/money-mastery/internal/cli"
)

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Merge local data with the cloud backup",
		Long: `Fetches the cloud copy of your data, merges it with local changes,
and pushes the merged result back. Requires remote.url and
remote.anon_key in the config, and a signed-in session.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			app := initApp(ctx)
			defer app.Close(ctx)

			if err := app.coordinator.Sync(ctx); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Sync complete."))
			return nil
		},
	}
}
