package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/olade/naija-events/internal/config"
	"github.com/olade/naija-events/internal/logger"
	"github.com/olade/naija-events/internal/pipeline"
	"github.com/olade/naija-events/internal/render"
	"github.com/olade/naija-events/internal/store"
	"github.com/olade/naija-events/internal/store/memory"
	mongostore "github.com/olade/naija-events/internal/store/mongo"
)

var (
	flagDryRun bool
	flagFormat string
)

// newScrapeCmd creates the one-shot extraction command
func newScrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape",
		Short: "Run one extraction pass against the source site",
		RunE:  runScrape,
	}

	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Extract without persisting (in-memory store)")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")

	return cmd
}

func runScrape(cmd *cobra.Command, args []string) error {
	if flagFormat != "text" && flagFormat != "json" {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Level(cfg.LogLevel), os.Stderr)
	logger.SetDefault(log)

	ctx := context.Background()

	var st store.Store
	if flagDryRun {
		st = memory.New()
	} else {
		mst, err := mongostore.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return fmt.Errorf("initializing store: %w", err)
		}
		defer mst.Close(ctx)
		st = mst
	}

	p := newPipeline(cfg, st, log)
	summary, err := p.Run(ctx)
	if err != nil {
		return fmt.Errorf("running extraction: %w", err)
	}

	return printSummary(summary)
}

// newPipeline wires the pipeline from configuration.
func newPipeline(cfg *config.Config, st store.Store, log *logger.Logger) *pipeline.Pipeline {
	transport := render.NewHTTP(render.Options{
		BrowserExecutable: cfg.BrowserExecutable,
		Viewport:          render.Viewport{Width: cfg.ViewportWidth, Height: cfg.ViewportHeight},
		UserAgent:         cfg.UserAgent,
		Headless:          cfg.Headless,
	})

	return pipeline.New(transport, st, log, pipeline.Config{
		ListingURL:     cfg.ListingURL,
		SourceID:       cfg.SourceID,
		ListingTimeout: cfg.ListingTimeout(),
		DetailTimeout:  cfg.DetailTimeout(),
		DetailDelay:    cfg.DetailDelay(),
	})
}

func printSummary(summary pipeline.Summary) error {
	if flagFormat == "json" {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding summary: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Scraping completed: %d/%d events saved\n", summary.Succeeded, summary.Attempted)
	return nil
}
