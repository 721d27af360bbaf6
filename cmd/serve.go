/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/valpere/rapidtran/internal/config"
	"github.com/valpere/rapidtran/internal/session"
	"github.com/valpere/rapidtran/internal/web"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the translator web page",
	Long: `Serve the translator page over HTTP. Each browser gets its own
session with its own selection, translation and history; sessions are kept
in memory until the process exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := buildService(cmd.Context(), appConfig, logger)
		if err != nil {
			return err
		}

		factory := func(clip session.Clipboard, notifier session.Notifier) *session.View {
			return buildView(svc, appConfig, logger, clip, notifier)
		}
		srv := web.NewServer(factory, logger.Named("web"))

		httpServer := &http.Server{
			Addr:              appConfig.Listen,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- httpServer.ListenAndServe()
		}()

		fmt.Fprintf(cmd.ErrOrStderr(), "Serving on %s\n", appConfig.Listen)
		logger.Info("server started", zap.String("listen", appConfig.Listen), zap.String("service", svc.Name()))

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("server failed: %w", err)
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Info("shutting down")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("listen", config.DefaultListen, "Address to listen on")
	viper.BindPFlag(config.KeyListen, serveCmd.Flags().Lookup("listen"))
}
