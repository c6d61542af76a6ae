package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reconanalytics/docgen/internal/api"
	"github.com/reconanalytics/docgen/internal/assets"
	"github.com/reconanalytics/docgen/internal/config"
	"github.com/reconanalytics/docgen/internal/generate"
	"github.com/reconanalytics/docgen/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	pol, err := config.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		log.Error("invalid section policy", "error", err)
		os.Exit(1)
	}

	st, err := store.New(cfg.OutputDir)
	if err != nil {
		log.Error("output store init failed", "error", err)
		os.Exit(1)
	}

	logo := resolveLogo(cfg, log)
	gen := generate.New(st, logo, cfg.SiteURL, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Background retention sweep.
	go func() {
		ticker := time.NewTicker(cfg.RetentionInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				deleted, err := st.Cleanup(cfg.RetentionMaxAge)
				if err != nil {
					log.Error("retention cleanup failed", "error", err)
					continue
				}
				if deleted > 0 {
					log.Info("retention cleanup", "deleted", deleted)
				}
			}
		}
	}()

	srv := api.NewServer(gen, st, pol, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docgen", "port", cfg.Port, "output_dir", cfg.OutputDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

// resolveLogo picks the default footer logo: a configured image file, then
// the logo embedded in a configured branded document, then a synthesized
// placeholder. Failure at every step just means documents render without a
// default logo.
func resolveLogo(cfg config.Config, log *slog.Logger) []byte {
	if cfg.LogoPath != "" {
		data, err := os.ReadFile(cfg.LogoPath)
		if err == nil {
			log.Info("logo loaded", "path", cfg.LogoPath)
			return data
		}
		log.Warn("logo file unreadable", "path", cfg.LogoPath, "error", err)
	}
	if cfg.LogoDocx != "" {
		data, err := assets.ExtractLogo(cfg.LogoDocx)
		if err == nil {
			log.Info("logo extracted", "path", cfg.LogoDocx)
			return data
		}
		log.Warn("logo extraction failed", "path", cfg.LogoDocx, "error", err)
	}
	data, err := assets.PlaceholderLogo()
	if err != nil {
		log.Warn("placeholder logo failed", "error", err)
		return nil
	}
	log.Info("using placeholder logo")
	return data
}
