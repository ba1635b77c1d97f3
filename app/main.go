package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lysyi3m/appcast-comb/app/api"
	"github.com/lysyi3m/appcast-comb/app/appcast"
	"github.com/lysyi3m/appcast-comb/app/cfg"
	"github.com/lysyi3m/appcast-comb/app/config"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	appCfg, err := cfg.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		// Equivalent of slog.SetLogLoggerLevel(slog.LevelDebug), which
		// needs Go 1.22+: enable debug-level slog output.
		slog.SetDefault(slog.New(slog.NewTextHandler(log.Writer(), &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	log.Printf("Starting Appcast Comb %s...", appCfg.Version)

	// Load appcast profile
	profileLoader := config.NewLoader(appCfg.ProfilePath)
	appcastConfig, err := profileLoader.Load()
	if err != nil {
		log.Fatalf("Failed to load appcast profile: %v", err)
	}
	log.Printf("Loaded appcast profile for %s", appcastConfig.App.Name)

	// Read the signing tool output
	signatureData, err := os.ReadFile(appCfg.SignaturePath)
	if err != nil {
		log.Fatalf("Failed to read signature file %s: %v", appCfg.SignaturePath, err)
	}
	signatureLine := strings.TrimSpace(string(signatureData))

	// Read the existing appcast; a missing file is not fatal, the loader
	// synthesizes a fresh document instead
	existing, err := os.ReadFile(appCfg.AppcastPath)
	if err != nil {
		log.Printf("No existing appcast at %s: %v", appCfg.AppcastPath, err)
		existing = nil
	}

	release := appcast.Release{
		Version:     appCfg.ReleaseVersion,
		BuildNumber: appCfg.BuildNumber,
		DownloadURL: appCfg.DownloadURL,
		Notes:       appCfg.ReleaseNotes,
		ReleaseURL:  appCfg.ReleaseURL,
	}

	processor := appcast.NewProcessor(appcastConfig)
	output, err := processor.Run(existing, signatureLine, release, time.Now().In(time.Local))
	if err != nil {
		log.Fatalf("Failed to update appcast: %v", err)
	}

	if err := os.WriteFile(appCfg.OutputPath, []byte(output), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", appCfg.OutputPath, err)
	}
	log.Printf("Generated %s for version %s", appCfg.OutputPath, appCfg.ReleaseVersion)

	if !appCfg.Serve {
		return
	}

	// Preview mode: serve the generated appcast until interrupted
	apiHandler := api.NewHandler(appcastConfig, output)
	server := api.NewServer(apiHandler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		log.Printf("Serving appcast preview on port %s", appCfg.Port)
		log.Printf("  Appcast:       http://localhost:%s/appcast.xml", appCfg.Port)
		log.Printf("  Health check:  http://localhost:%s/health", appCfg.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	log.Println("Press Ctrl+C to shutdown gracefully...")

	select {
	case sig := <-sigChan:
		log.Printf("Received signal: %v", sig)
	case err := <-serverErrChan:
		log.Printf("Server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	} else {
		log.Println("HTTP server stopped")
	}
}
