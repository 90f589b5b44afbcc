package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"real-estate-go/internal/app"
)

func initDBCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				db := a.Config().DB
				opts.log.Info("db: schema ready", "driver", db.Driver)
				fmt.Fprintf(cmd.OutOrStdout(), "Database initialized (%s).\n", db.Driver)
				return nil
			})
		},
	}
}
