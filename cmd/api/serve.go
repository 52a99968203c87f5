package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	pg "dogs-registry/internal/adapters/storage/postgres"
	"dogs-registry/internal/router"
	"dogs-registry/internal/seed"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	if a.cfg.UsePostgres() && a.cfg.Database.MigrateOnStart {
		if err := pg.Migrate(ctx, a.cfg.Database.DSN, a.log); err != nil {
			return err
		}
	}
	if err := a.openDB(ctx); err != nil {
		return err
	}
	a.openRedis(ctx)

	opts, err := a.routerOptions()
	if err != nil {
		return err
	}
	svcs := router.NewServices(opts)

	// Sin Postgres el store arranca vacío, así que el seed siempre corre.
	if a.cfg.Seed.OnStart || !a.cfg.UsePostgres() {
		f, err := seed.LoadFile(a.cfg.Seed.File)
		if err != nil {
			return err
		}
		if _, err := seed.Apply(ctx, svcs.Catalog, f, a.log); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:         a.cfg.Addr(),
		Handler:      router.NewHandler(svcs, opts),
		ReadTimeout:  a.cfg.HTTP.ReadTimeout,
		WriteTimeout: a.cfg.HTTP.WriteTimeout,
		IdleTimeout:  a.cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server", map[string]any{"addr": srv.Addr, "auth_mode": a.cfg.Auth.Mode})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
