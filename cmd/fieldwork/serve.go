package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fieldwork-dev/fieldwork/internal/config"
	"github.com/fieldwork-dev/fieldwork/pkg/middleware"
	"github.com/fieldwork-dev/fieldwork/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		addr       string
		dir        string
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the live validation server",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))
			slog.SetDefault(logger)

			var (
				cfg *config.Config
				err error
			)
			if configPath != "" {
				cfg, err = config.LoadFile(configPath)
			} else {
				cfg, err = config.Load(dir)
			}
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr()
			}

			srvConfig := server.DefaultConfig()
			srvConfig.Addr = addr
			srvConfig.Logger = logger
			srvConfig.Middleware = []middleware.Middleware{
				middleware.OpenTelemetry(),
				middleware.Prometheus(),
			}
			srvConfig.Observer = middleware.MetricsObserver{}

			srv := server.New(srvConfig)
			for _, fc := range cfg.Forms {
				fields := make([]server.FieldSpec, 0, len(fc.Fields))
				for _, fd := range fc.Fields {
					fields = append(fields, server.FieldSpec{
						Name:     fd.Name,
						Label:    fd.Label,
						Required: fd.Required,
					})
				}
				spec := server.FormSpec{
					Name:        fc.Name,
					SuccessText: fc.SuccessText,
					HideDelay:   time.Duration(fc.SuccessHideMs) * time.Millisecond,
					Fields:      fields,
				}
				if err := srv.RegisterForm(spec); err != nil {
					return err
				}
			}

			// Stop on SIGINT/SIGTERM.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			fmt.Printf("fieldwork serving %d form(s) on http://%s\n", len(cfg.Forms), addr)

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides fieldwork.json)")
	cmd.Flags().StringVar(&dir, "dir", ".", "project directory containing fieldwork.json")
	cmd.Flags().StringVar(&configPath, "config", "", "explicit path to fieldwork.json (missing file is an error)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
