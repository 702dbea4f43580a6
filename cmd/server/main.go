// Package main is the entry point for the buildcost API server.
package main

import (
	"flag"
	"net/http"
	"os"

	"go.uber.org/zap"

	"buildcost/adapters/storage"
	"buildcost/api"
	"buildcost/core/catalog"
	"buildcost/core/ratecard"
	"buildcost/core/types"
	"buildcost/internal/config"
	"buildcost/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logging.Fatal("failed to load config", zap.Error(err))
		}
		cfg = loaded
		config.Set(cfg)
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("failed to initialize logging", zap.Error(err))
	}

	cat, rc := loadSnapshot(cfg)

	store, err := storage.New(storage.Backend(cfg.Storage.Backend), cfg.Storage.Path)
	if err != nil {
		logging.Fatal("failed to open estimate store", zap.Error(err))
	}
	defer store.Close()

	server := api.NewServerWithStore(version, cat, rc, store)

	logging.Info("starting API server",
		zap.String("addr", cfg.Server.Addr),
		zap.Int("catalog_modules", cat.Len()))
	if err := http.ListenAndServe(cfg.Server.Addr, server); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}

// loadSnapshot reads the catalog and rate card once at startup; every
// request is then served from this consistent snapshot
func loadSnapshot(cfg *config.Config) (*catalog.Catalog, types.RateCard) {
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			logging.Fatal("failed to load catalog", zap.Error(err))
		}
		cat = loaded
	}

	rc := ratecard.Default()
	if cfg.RateCardPath != "" {
		loaded, err := ratecard.LoadFile(cfg.RateCardPath)
		if err != nil {
			logging.Fatal("failed to load rate card", zap.Error(err))
		}
		rc = loaded
	}
	return cat, rc
}
