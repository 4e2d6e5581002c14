package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-school-link/internal/adapter"
	"github.com/MKhiriev/go-school-link/internal/client"
	"github.com/MKhiriev/go-school-link/internal/config"
	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/internal/service"
	"github.com/MKhiriev/go-school-link/internal/store"
	"github.com/MKhiriev/go-school-link/internal/tui"
	"github.com/MKhiriev/go-school-link/models"
)

const clientRole = "school-link-client"

type rootOptions struct {
	flags   *config.Flags
	noInput bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "school-link",
		Short:         "Session client for the school-link platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	opts.flags = config.BindFlags(cmd.PersistentFlags())
	cmd.PersistentFlags().BoolVar(&opts.noInput, "no-input", false, "Never prompt; fail when input is missing")

	cmd.AddCommand(
		newLoginCommand(opts),
		newLogoutCommand(opts),
		newStatusCommand(opts),
		newSelectCommand(opts),
		newRefreshCommand(opts),
		newChangePasswordCommand(opts),
		newWatchCommand(opts),
		newVersionCommand(),
	)
	return cmd
}

func newLoginCommand(opts *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and choose the active association",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, false, func(ctx context.Context, app *client.App) error {
				return app.Login(ctx, email, password)
			})
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "Account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Account password (prompted when empty)")
	return cmd
}

func newLogoutCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session and remove every persisted session key",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, false, func(ctx context.Context, app *client.App) error {
				app.Logout(ctx)
				return nil
			})
		},
	}
}

func newStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the session and where it leads next",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, true, func(ctx context.Context, app *client.App) error {
				return app.Status(ctx)
			})
		},
	}
}

func newSelectCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "select [association-id]",
		Short: "Choose the active association",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			}
			return withApp(cmd, opts, true, func(ctx context.Context, app *client.App) error {
				if err := app.Select(ctx, id); err != nil {
					return err
				}
				return app.Status(ctx)
			})
		},
	}
}

func newRefreshCommand(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Refetch associations and reconcile the active one",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, true, func(ctx context.Context, app *client.App) error {
				return app.Refresh(ctx, force)
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Ask the server for the authoritative active association")
	return cmd
}

func newChangePasswordCommand(opts *rootOptions) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Rotate the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, true, func(ctx context.Context, app *client.App) error {
				if err := app.ChangePassword(ctx, password); err != nil {
					return err
				}
				return app.Status(ctx)
			})
		},
	}

	cmd.Flags().StringVarP(&password, "password", "p", "", "New password (prompted when empty)")
	return cmd
}

func newWatchCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Keep the session reconciled and serve /healthz and /metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, false, func(ctx context.Context, app *client.App) error {
				return app.Watch(ctx)
			})
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).String())
		},
	}
}

// withApp wires the client runtime, optionally restores the persisted
// session, runs fn and releases the local store.
func withApp(cmd *cobra.Command, opts *rootOptions, start bool, fn func(ctx context.Context, app *client.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.GetClientConfig(opts.flags)
	if err != nil {
		return fmt.Errorf("get configs: %w", err)
	}

	log := logger.NewClientLogger(clientRole, cfg.App.LogFile)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(storages, serverAdapter, cfg, log)

	var prompter client.Prompter
	if !opts.noInput {
		prompter = tui.New(services.SessionStore, log)
	}

	app := client.NewApp(
		services,
		prompter,
		cfg,
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		os.Stdout,
		log,
	)

	if start {
		if err = app.Start(ctx); err != nil {
			return err
		}
	}
	return fn(ctx, app)
}
