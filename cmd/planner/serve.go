package main

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
	"go.uber.org/zap"

	"github.com/sverzijl/planning-latest-sub008/pkg/diagnostics"
	"github.com/sverzijl/planning-latest-sub008/pkg/metrics"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a long-lived diagnostics server (/healthz, /readyz, /metrics)",
	Long: `Starts the diagnostics HTTP mux standalone, for a deployment where a
scheduler (cron, k8s CronJob) invokes "planner rolling" periodically and a
sidecar scrapes /metrics between runs. This command does not itself solve
anything: pair it with a scheduled "planner rolling" invocation.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "diagnostics server listen port")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger()
	defer log.Sync() //nolint:errcheck

	diag := diagnostics.New(nil, func() error { return nil })
	metrics.MustRegister(diag.Registry())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", servePort),
		Handler: diag.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("diagnostics server listening", zap.Int("port", servePort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		exitCode = 5
		return err
	case <-sigCh:
		log.Info("shutting down diagnostics server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
