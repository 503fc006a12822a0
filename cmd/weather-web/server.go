//go:build !wasm

package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"weather-client/config"
	"weather-client/ui"
)

func serve() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configFile := flag.String("config", "config.json", "Path to configuration file")
	outDir := flag.String("out", "", "Generate the static website into this directory and exit")
	address := flag.String("addr", "localhost:8080", "Address to serve on")
	dev := flag.Bool("dev", false, "Development mode: request logging, no versioned cache")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	h := newHandler(cfg, *dev)

	if *outDir != "" {
		if err := app.GenerateStaticWebsite(*outDir, h); err != nil {
			log.Fatalf("Failed to generate static website: %v", err)
		}
		log.Printf("Static website written to %s", *outDir)
		return
	}

	engine := newEngine(h, *dev)
	log.Printf("listening on http://%s", *address)
	if err := http.ListenAndServe(*address, engine); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server stopped: %v", err)
	}
}

// loadConfig reads the optional config file and overlays the environment
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg, err = config.DefaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if cfg.APIKey == "" {
		log.Println("Warning: no API key configured; requests will be rejected")
	}
	return cfg, nil
}

func newHandler(cfg *config.Config, dev bool) *app.Handler {
	h := &app.Handler{
		Name:        "Weather Dashboard",
		ShortName:   "weather",
		Title:       "Weather Dashboard",
		Description: "Current conditions and 5-day forecast",
		Scripts:     []string{"https://cdn.tailwindcss.com"},
		Env: map[string]string{
			ui.EnvAPIKey:  cfg.APIKey,
			ui.EnvBaseURL: cfg.BaseURL,
		},
	}
	if dev {
		h.Version = ""
	}
	return h
}

func newEngine(h *app.Handler, dev bool) *gin.Engine {
	if !dev {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	// required for go-app to work correctly
	engine.RedirectTrailingSlash = false

	middleware := []gin.HandlerFunc{gin.Recovery()}
	if dev {
		middleware = append(middleware, gin.LoggerWithConfig(gin.LoggerConfig{SkipPaths: []string{"/app-worker.js"}}))
	}
	engine.Use(middleware...)
	engine.NoRoute(gin.WrapH(h))

	return engine
}
