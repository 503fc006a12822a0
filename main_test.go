package main

import (
	"context"
	"path/filepath"
	"testing"

	"weather-client/config"
	"weather-client/datasource"
	"weather-client/providers/openweathermap"
	"weather-client/storage"
	"weather-client/storage/sqlstore"
)

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		driver string
		path   string
		dsn    string
	}{
		{"memory", config.DriverMemory, "", ""},
		{"file", config.DriverFile, filepath.Join(dir, "recent.json"), ""},
		{"sqlite", config.DriverSQLite, "", filepath.Join(dir, "recent.db")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Storage.Driver = tt.driver
			cfg.Storage.Path = tt.path
			cfg.Storage.DSN = tt.dsn

			kv, err := openStore(cfg)
			if err != nil {
				t.Fatalf("openStore failed: %v", err)
			}
			defer kv.Close()

			ctx := context.Background()
			if err := kv.Set(ctx, "recentSearches", `["Lima"]`); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if v, err := kv.Get(ctx, "recentSearches"); err != nil || v != `["Lima"]` {
				t.Errorf("Get = %q, %v", v, err)
			}
		})
	}

	cfg := config.DefaultConfig()
	cfg.Storage.Driver = "redis"
	if _, err := openStore(cfg); err == nil {
		t.Error("expected error for unknown driver")
	}
}

func TestOpenStoreTypes(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.Driver = config.DriverSQLite
	cfg.Storage.DSN = filepath.Join(t.TempDir(), "w.db")

	kv, err := openStore(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer kv.Close()
	if _, ok := kv.(*sqlstore.SQL); !ok {
		t.Errorf("sqlite driver gave %T", kv)
	}

	cfg.Storage.Driver = config.DriverMemory
	if kv, _ := openStore(cfg); kv != nil {
		if _, ok := kv.(*storage.Memory); !ok {
			t.Errorf("memory driver gave %T", kv)
		}
	}
}

func TestNewProvider(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.APIKey = "k"

	if _, ok := newProvider(cfg).(*datasource.OpenWeatherMapProvider); !ok {
		t.Error("default provider should be the REST provider")
	}

	cfg.Provider = config.ProviderSDK
	if _, ok := newProvider(cfg).(*openweathermap.SDKProvider); !ok {
		t.Error("owm-sdk should select the SDK provider")
	}
}

func TestLoadConfigRequiresKey(t *testing.T) {
	t.Setenv("OPENWEATHERMAP_API_KEY", "")
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected validation error without an API key")
	}

	t.Setenv("OPENWEATHERMAP_API_KEY", "k")
	t.Setenv("WEATHER_STORAGE_DRIVER", config.DriverMemory)
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.APIKey != "k" || cfg.Storage.Driver != config.DriverMemory {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
