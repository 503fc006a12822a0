package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"weather-client/client"
	"weather-client/config"
	"weather-client/datasource"
	"weather-client/history"
	"weather-client/models"
	"weather-client/providers/openweathermap"
	"weather-client/storage"
	"weather-client/storage/sqlstore"
	"weather-client/terminal"
)

const usage = `Commands:
  <city>      search weather for a city
  /loc        weather for the configured location
  /recent     show recent searches
  /<n>        search the n-th recent city
  /quit       exit`

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configFile := flag.String("config", "config.json", "Path to configuration file")
	verbose := flag.Bool("v", false, "Log flow details to stderr")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	kv, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open storage: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	display := terminal.NewDisplay(os.Stdout)
	c, err := client.New(client.Options{
		Display:  display,
		Provider: newProvider(cfg),
		History:  history.New(kv, log.Default()),
		Geolocator: terminal.FixedLocator{
			Coords:  models.Coordinates{Latitude: cfg.Location.Latitude, Longitude: cfg.Location.Longitude},
			Enabled: cfg.Location.Enabled,
		},
		Logger: log.Default(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c.Start(ctx)

	// One-shot search from the command line
	if flag.NArg() > 0 {
		if err := c.Search(ctx, strings.Join(flag.Args(), " ")); err != nil {
			stop()
			kv.Close()
			os.Exit(1)
		}
		return
	}

	run(ctx, c, display, os.Stdin)
}

// loadConfig reads the optional config file, overlays the environment and validates
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
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore creates the key-value backend named by the configuration
func openStore(cfg *config.Config) (storage.KV, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		return storage.NewMemory(), nil
	case config.DriverFile:
		return storage.NewFile(cfg.Storage.Path)
	case config.DriverSQLite, config.DriverMySQL:
		return sqlstore.NewSQL(cfg.Storage.Driver, cfg.Storage.DSN)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func newProvider(cfg *config.Config) datasource.Provider {
	if cfg.Provider == config.ProviderSDK {
		return openweathermap.NewSDKProvider(cfg.APIKey, &http.Client{Timeout: cfg.Timeout()})
	}
	return datasource.NewOpenWeatherMapProvider(cfg.APIKey, cfg.BaseURL, datasource.NewHTTPFetcher(cfg.Timeout()))
}

// run reads commands until EOF, /quit or cancellation
func run(ctx context.Context, c *client.Client, display *terminal.Display, in io.Reader) {
	fmt.Println(usage)
	scanner := bufio.NewScanner(in)

	for {
		fmt.Print("city> ")
		if !scanner.Scan() {
			return
		}
		if ctx.Err() != nil {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "/quit" || line == "/q":
			return
		case line == "/loc":
			_ = c.UseCurrentLocation(ctx)
		case line == "/recent":
			if len(display.Recent()) == 0 {
				fmt.Println("No recent searches")
				continue
			}
			c.FocusInput(ctx)
			c.ClickOutside()
		case strings.HasPrefix(line, "/"):
			n, err := strconv.Atoi(strings.TrimPrefix(line, "/"))
			if err != nil {
				fmt.Println(usage)
				continue
			}
			city, ok := display.Pick(n)
			if !ok {
				fmt.Printf("No recent search #%d\n", n)
				continue
			}
			_ = c.SelectRecent(ctx, city)
		default:
			_ = c.Search(ctx, line)
		}
	}
}
