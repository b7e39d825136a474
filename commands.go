package main

import (
	"Packlist/internal/server"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

func Execute() error {
	root := &cobra.Command{
		Use:          "packlist",
		Short:        "Supplier packing-list portal",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "packlist.yaml", "path to the configuration file")
	root.AddCommand(serveCmd(), cleanCmd())
	return root.Execute()
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the portal HTTP server and the draft janitor",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, cleanup, err := InitializeServer(configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			srv.JanitorService.StartCleanCycle()
			defer srv.JanitorService.StopClean()

			app := server.NewApp(srv, srv.Configuration)
			errs := make(chan error, 1)
			go func() {
				errs <- app.Listen(fmt.Sprintf(":%d", srv.Configuration.Server.Port))
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			select {
			case err := <-errs:
				return err
			case <-ctx.Done():
			}
			srv.LogService.Log.WithFields(logrus.Fields{"status": "stopping"}).Info("shutting down")
			return app.ShutdownWithTimeout(10 * time.Second)
		},
	}
}

func cleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Delete drafts older than the configured TTL and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, cleanup, err := InitializeServer(configPath)
			if err != nil {
				return err
			}
			defer cleanup()

			count, err := srv.JanitorService.RunOnce()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d stale drafts\n", count)
			return nil
		},
	}
}
