package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-school-link/internal/app"
	"github.com/MKhiriev/go-school-link/internal/config"
	"github.com/MKhiriev/go-school-link/internal/handler"
	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/internal/server"
	"github.com/MKhiriev/go-school-link/internal/service"
	"github.com/MKhiriev/go-school-link/internal/workers"
	"github.com/MKhiriev/go-school-link/models"
)

// App drives the session services on behalf of the CLI commands.
type App struct {
	services  *service.ClientServices
	navigator *Navigator
	prompter  Prompter

	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	out       io.Writer
	logger    *logger.Logger
}

// NewApp subscribes the institution selection to the session store and
// registers it with the reconciler. prompter may be nil.
func NewApp(services *service.ClientServices, prompter Prompter, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	selection := NewInstitutionSelection()
	services.SessionStore.Subscribe(selection.Observe)
	services.Reconciler.Register(selection)

	return &App{
		services:  services,
		navigator: NewNavigator(services.SessionStore, services.Gate),
		prompter:  prompter,
		cfg:       cfg,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}
}

// Start restores the persisted session and, when it is authenticated,
// checks the active association. Network failures during the check are
// logged; an unrepaired inconsistency is returned.
func (a *App) Start(ctx context.Context) error {
	if _, err := a.services.SessionStore.Hydrate(ctx); err != nil {
		if !errors.Is(err, service.ErrSessionSuperseded) {
			return fmt.Errorf("hydrate session: %w", err)
		}
		// a login or logout already settled the session
		a.logger.Debug().Str("func", "App.Start").Msg("hydrate superseded")
	}

	if !a.services.SessionStore.View().IsAuthenticated {
		return nil
	}
	return a.ensureConsistent(ctx)
}

// Login signs in and settles the session: password rotation, association
// choice and a consistency check. An empty password asks the prompter.
func (a *App) Login(ctx context.Context, email, password string) error {
	var err error
	if password == "" {
		if a.prompter == nil {
			return ErrPasswordRequired
		}
		_, err = a.prompter.Login(ctx, email)
	} else {
		_, err = a.services.SessionStore.Login(ctx, email, password)
	}
	if err != nil {
		return err
	}

	if err = a.settle(ctx); err != nil {
		return err
	}
	return a.Status(ctx)
}

// settle walks the session towards home as far as the prompter allows.
func (a *App) settle(ctx context.Context) error {
	if a.prompter == nil {
		return a.ensureConsistent(ctx)
	}

	if a.services.Gate.State() == service.GateMustChangePassword {
		if err := a.prompter.ChangePassword(ctx, true); err != nil {
			return err
		}
	}

	if a.navigator.Resolve() == service.RouteSelectAssociation {
		if err := a.Select(ctx, ""); err != nil {
			return err
		}
	}
	return a.ensureConsistent(ctx)
}

func (a *App) ensureConsistent(ctx context.Context) error {
	outcome, err := a.services.SessionStore.EnsureConsistent(ctx)
	switch {
	case err == nil:
		a.logger.Debug().Str("func", "App.ensureConsistent").Str("status", outcome.Status.String()).Msg("active association checked")
		return nil
	case errors.Is(err, service.ErrInconsistentAssociation):
		return err
	default:
		a.logger.Warn().Err(err).Str("func", "App.ensureConsistent").Msg("consistency check postponed")
		return nil
	}
}

// Logout ends the session locally.
func (a *App) Logout(ctx context.Context) {
	a.services.SessionStore.Logout(ctx)
	fmt.Fprintln(a.out, "signed out")
}

// Select activates the association with id. An empty id asks the prompter.
func (a *App) Select(ctx context.Context, id string) error {
	view := a.services.SessionStore.View()
	if !view.IsAuthenticated {
		return service.ErrNotAuthenticated
	}

	if id == "" {
		if a.prompter == nil {
			return ErrInputRequired
		}
		if view.Associations == nil {
			if _, err := a.services.SessionStore.RefreshActiveAssociation(ctx); err != nil {
				return err
			}
			view = a.services.SessionStore.View()
		}
		if len(view.Associations) == 0 {
			return service.ErrNoAssociations
		}

		var currentID string
		if view.ActiveAssociation != nil {
			currentID = view.ActiveAssociation.ID
		}

		var err error
		if id, err = a.prompter.PickAssociation(ctx, view.Associations, currentID); err != nil {
			return err
		}
	}

	return a.services.SessionStore.SelectAssociation(ctx, id)
}

// Refresh refetches the association list, or asks the backend for the
// authoritative active association when force is set, then reconciles.
func (a *App) Refresh(ctx context.Context, force bool) error {
	var err error
	if force {
		_, err = a.services.SessionStore.ForceRefreshActiveAssociation(ctx)
	} else {
		_, err = a.services.SessionStore.RefreshActiveAssociation(ctx)
	}
	if err != nil {
		return err
	}

	if _, err = a.services.SessionStore.EnsureConsistent(ctx); err != nil {
		return err
	}
	return a.Status(ctx)
}

// ChangePassword rotates the password. An empty password asks the prompter.
func (a *App) ChangePassword(ctx context.Context, password string) error {
	view := a.services.SessionStore.View()
	if !view.IsAuthenticated {
		return service.ErrNotAuthenticated
	}

	if password != "" {
		return a.services.SessionStore.ChangePassword(ctx, password)
	}
	if a.prompter == nil {
		return ErrPasswordRequired
	}
	return a.prompter.ChangePassword(ctx, view.User != nil && view.User.FirstLoginPending)
}

// Status prints the session summary and the next destination.
func (a *App) Status(_ context.Context) error {
	view := a.services.SessionStore.View()
	route := a.navigator.Resolve()

	var b strings.Builder
	if !view.IsAuthenticated {
		b.WriteString("not signed in\n")
	} else {
		if view.User != nil {
			fmt.Fprintf(&b, "signed in as %s <%s>\n", view.User.DisplayName, view.User.Email)
		}
		if view.Associations != nil {
			fmt.Fprintf(&b, "associations: %d\n", len(view.Associations))
		}
		if view.ActiveAssociation != nil {
			fmt.Fprintf(&b, "active: %s\n", view.ActiveAssociation.Label())
		}
	}
	if msg := routeMessage(route); msg != "" {
		fmt.Fprintf(&b, "%s\n", msg)
	}
	fmt.Fprintf(&b, "next: %s\n", route)

	_, err := io.WriteString(a.out, b.String())
	return err
}

func routeMessage(route service.Route) string {
	switch route {
	case service.RouteChangePassword:
		return app.MsgMustChangePassword
	case service.RouteNoAssociations:
		return app.MsgNoAssociations
	case service.RouteSelectAssociation:
		return app.MsgSelectionRequired
	case service.RouteIntegrityFault:
		return app.MsgInconsistentAssociation
	default:
		return ""
	}
}

// Watch keeps the session reconciled in the background and, when a metrics
// address is configured, serves the status endpoints. It blocks until ctx
// is done or a termination signal arrives.
func (a *App) Watch(ctx context.Context) error {
	if err := a.Start(ctx); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	w := workers.NewClientWorkers(a.services, a.cfg.Workers)
	w.Run(ctx)
	defer w.Stop()

	if a.cfg.App.MetricsAddress == "" {
		a.logger.Info().Str("func", "App.Watch").Msg("no metrics address configured, running reconciliation only")
		<-ctx.Done()
		return nil
	}

	handlers, err := handler.NewHandlers(a.services, a.buildInfo, a.cfg.App, a.logger)
	if err != nil {
		return fmt.Errorf("create handlers: %w", err)
	}
	srv, err := server.NewServer(handlers, a.cfg.App, a.logger)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}
	return srv.RunServer(ctx)
}
