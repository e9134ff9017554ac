package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/nDmitry/podfeed/internal/app"
	"github.com/nDmitry/podfeed/internal/cache"
	"github.com/nDmitry/podfeed/internal/config"
	"github.com/nDmitry/podfeed/internal/enclosure"
	"github.com/nDmitry/podfeed/internal/pipeline"
)

const redisKeyPrefix = "podfeed:"

func main() {
	logger := app.Logger()
	slog.SetDefault(logger)

	opts, err := config.ParseOptions(os.Args[1:])

	if err != nil {
		if config.IsHelp(err) {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}

		logger.Error("Invalid options", "error", err)
		os.Exit(1)
	}

	app.SetDebug(opts.Debug)

	// Create a cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Received first shutdown signal, cancelling the run...")
		cancel()

		// If we receive a second signal, exit immediately
		<-sigChan
		logger.Info("Received second shutdown signal, exiting immediately...")
		os.Exit(1)
	}()

	if err := run(ctx, opts); err != nil {
		logger.Error("Feed generation failed", "error", err)
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts *config.Options) error {
	logger := app.Logger()

	site, err := config.ReadSite(opts.SiteConfig)

	if err != nil {
		return err
	}

	feeds, err := config.ReadFeeds(opts.Feeds)

	if err != nil {
		return err
	}

	var resolverOpts []enclosure.Option

	if opts.Redis != "" {
		redisClient, err := cache.NewRedisClient(ctx, opts.Redis, redisKeyPrefix)

		if err != nil {
			return fmt.Errorf("failed to connect to Redis: %w", err)
		}

		defer redisClient.Close()

		resolverOpts = append(resolverOpts, enclosure.WithShared(redisClient, opts.SizeTTL))
		logger.Info("Sharing enclosure sizes through Redis", "addr", opts.Redis, "ttl", opts.SizeTTL)
	}

	resolver := enclosure.NewResolver(enclosure.NewHeadProber(opts.UserAgent, opts.Timeout), resolverOpts...)

	p := pipeline.New(pipeline.Config{
		PostsDir:     opts.Posts,
		TemplatesDir: opts.Templates,
		OutputDir:    opts.Output,
		Site:         *site,
		Feeds:        feeds,
		Verify:       opts.Verify,
	}, resolver)

	_, err = p.Run(ctx)

	return err
}
