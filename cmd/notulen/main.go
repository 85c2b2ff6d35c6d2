package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"notulen/internal/cli"
	"notulen/internal/core"
	apphttp "notulen/internal/http"
	"notulen/internal/ingest"
	"notulen/internal/log"
	"notulen/internal/render"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(log.ComponentApp)
	cfg := cli.LoadAndValidateConfig(logger)

	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	result := cli.InitBackend(ctx, logger, cfg)
	if result.Cleanup != nil {
		defer func() {
			if err := result.Cleanup(); err != nil {
				logger.Error("Backend cleanup failed", log.FieldError, err)
			}
		}()
	}

	// Records are loaded once at startup; a load failure is fatal, bad
	// rows are not.
	loader := ingest.NewLoader(result.Backend, logger.WithComponent(log.ComponentIngest))
	dataset, err := loader.Load(ctx)
	if err != nil {
		logger.Error("Record load failed",
			log.FieldError, err,
			log.FieldBackend, cfg.DataBackend)
		os.Exit(1)
	}

	layout := render.Layout{
		CellWidth:   cfg.CellWidth,
		CellHeight:  cfg.CellHeight,
		CellGap:     cfg.CellGap,
		MarginX:     cfg.MarginX,
		MarginY:     cfg.MarginY,
		OpacityStep: cfg.OpacityStep,
	}
	var filter *core.YearRange
	if cfg.YearMin != 0 && cfg.YearMax != 0 {
		filter = &core.YearRange{Min: cfg.YearMin, Max: cfg.YearMax}
	}

	srv := apphttp.NewServer(":"+cfg.Port, dataset, result.Backend, layout, filter,
		logger.WithComponent(log.ComponentHTTP))
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting notulen server",
			"port", cfg.Port,
			log.FieldBackend, cfg.DataBackend,
			log.FieldRows, len(dataset.Dates),
			log.FieldSkipped, dataset.SkippedTotal())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
