package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/olade/naija-events/internal/api"
	"github.com/olade/naija-events/internal/config"
	"github.com/olade/naija-events/internal/logger"
	"github.com/olade/naija-events/internal/scheduler"
	mongostore "github.com/olade/naija-events/internal/store/mongo"
)

// newServeCmd creates the long-running service command
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled scraper",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Level(cfg.LogLevel), os.Stdout)
	logger.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return fmt.Errorf("initializing store: %w", err)
	}
	defer st.Close(context.Background())

	p := newPipeline(cfg, st, log)
	sched := scheduler.New(p, log, time.Month(cfg.PeakMonth))
	sched.Start(ctx)

	server := &http.Server{
		Addr:    cfg.APIAddr,
		Handler: api.New(st, sched, cfg.SourceID),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("API listening", logger.Fields{"addr": cfg.APIAddr})
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serving API: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down API: %w", err)
	}
	return nil
}
