package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgchart/pkg/cli/config"
	controller "github.com/secmon-lab/orgchart/pkg/controller/http"
	"github.com/secmon-lab/orgchart/pkg/usecase"
	"github.com/secmon-lab/orgchart/pkg/utils/apperr"
	"github.com/secmon-lab/orgchart/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		slackCfg     config.Slack
		firestoreCfg config.Firestore
		seedCfg      config.Seed
	)

	flags := joinFlags(
		serverCfg.Flags(),
		slackCfg.Flags(),
		firestoreCfg.Flags(),
		seedCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the employee store server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting orgchart server",
				slog.Any("server", serverCfg),
				slog.Any("slack", slackCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("seed", seedCfg),
			)

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			var opts []usecase.DirectoryOption
			announcer, err := slackCfg.Configure(ctx)
			if err != nil {
				return err
			}
			if announcer != nil {
				opts = append(opts, usecase.WithAnnouncer(announcer))
			}

			directory := usecase.NewDirectory(repo, opts...)

			seed, err := seedCfg.Load()
			if err != nil {
				return err
			}
			if seed != nil {
				if _, err := directory.Seed(ctx, seed); err != nil {
					return goerr.Wrap(err, "failed to seed employee store")
				}
			}

			server, err := controller.NewServer(ctx, serverCfg.Addr, directory)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- goerr.Wrap(err, "HTTP server stopped")
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return err
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}
			if err := async.Wait(shutdownCtx); err != nil {
				apperr.Handle(ctx, err)
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
