package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"real-estate-go/internal/app"
	"real-estate-go/internal/config"
	"real-estate-go/internal/transport/console"
	"real-estate-go/pkg/logger"
)

type options struct {
	log    logger.Logger
	driver string
	path   string
}

// NewRootCmd builds the command tree. Without a subcommand it runs the
// interactive menu on the command's input and output.
func NewRootCmd(log logger.Logger) *cobra.Command {
	opts := &options{log: log}

	cmd := &cobra.Command{
		Use:           "real-estate",
		Short:         "Real estate management system",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(a *app.App) error {
				sessionLog := opts.log.With("session", uuid.NewString())
				sessionLog.Info("console: session started")
				c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), sessionLog, a.Estate(), a.Reports())
				return runUntilDone(cmd.Context(), menuStopGrace, c.Run)
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.driver, "db-driver", "", "database driver (sqlite or postgres), overrides DB_DRIVER")
	cmd.PersistentFlags().StringVar(&opts.path, "db-path", "", "sqlite database file, overrides DB_PATH")

	cmd.AddCommand(
		initDBCmd(opts),
		reportCmd(opts),
	)

	return cmd
}

func (o *options) config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.log)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("db-driver") {
		cfg.DB.Driver = o.driver
	}
	if cmd.Flags().Changed("db-path") {
		cfg.DB.Path = o.path
	}
	if err := cfg.DB.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// withApp acquires the store session for one command and always releases it.
func (o *options) withApp(cmd *cobra.Command, fn func(a *app.App) error) (err error) {
	cfg, err := o.config(cmd)
	if err != nil {
		return err
	}

	application, err := app.New(o.log, cfg)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer func() {
		if closeErr := application.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close: %w", closeErr)
		}
	}()

	return fn(application)
}

// menuStopGrace bounds how long a cancelled menu may take to finish the
// operation it is running before the store is closed.
const menuStopGrace = 2 * time.Second

// runUntilDone returns once run does, or once ctx is cancelled and run has
// had grace to notice. A menu blocked reading input never notices; that
// goroutine is left to end with the process.
func runUntilDone(ctx context.Context, grace time.Duration, run func(context.Context) error) error {
	done := make(chan error, 1)
	go func() {
		done <- run(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
	}

	timer := time.NewTimer(grace)
	defer timer.Stop()
	select {
	case <-done:
	case <-timer.C:
	}
	return ctx.Err()
}
