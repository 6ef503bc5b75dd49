package main

import (
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"OnlineStore/internal/catalog"
	"OnlineStore/internal/config"
	"OnlineStore/pkg/kit"
)

func main() {
	cfg := config.Load()

	log := kit.NewLogger("catalog", uuid.NewString())
	defer func() { _ = log.Sync() }()

	store := catalog.NewMemStore()
	service := catalog.NewService(store)

	s := &catalog.Server{Service: service, Log: log}

	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:      log,
		Service:  "catalog",
		Registry: prometheus.NewRegistry(),

		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,

		CreateLimitPerMin: cfg.CreateLimitPerMin,
	})

	if err := kit.RunHTTPServer(cfg.HTTPAddr, h, log, cfg.ShutdownTimeout); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
