// Package rest provides functionality for initializing a server for the shortening URL service.
package rest

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/danilovkiri/dk_go_shortify/internal/api/rest/handlers"
	"github.com/danilovkiri/dk_go_shortify/internal/api/rest/middleware"
	"github.com/danilovkiri/dk_go_shortify/internal/config"
	"github.com/danilovkiri/dk_go_shortify/internal/service/shortener"
)

// NewRouter wires handlers and middleware; metrics are registered in reg and exposed through it.
func NewRouter(cfg *config.Config, processor shortener.Processor, reg *prometheus.Registry, log *zap.SugaredLogger) (*chi.Mux, error) {
	urlHandler, err := handlers.InitURLHandler(processor, cfg.BaseURL, log)
	if err != nil {
		return nil, err
	}
	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return nil, err
	}
	adminAuth, err := middleware.NewAdminAuth(cfg.AdminUser, cfg.AdminPass, log)
	if err != nil {
		return nil, err
	}
	trustedNet, err := middleware.NewTrustedNetHandler(cfg.TrustedSubnet, log)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(metrics.Handle)
	r.Use(middleware.CompressHandle)
	r.Use(middleware.DecompressHandle)
	r.Get("/", urlHandler.HandleIndex())
	r.Post("/shortify", urlHandler.HandlePostShortify())
	r.Get("/ping", urlHandler.HandlePingDB())
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	r.Route("/admin", func(r chi.Router) {
		r.Use(trustedNet.Handle)
		r.Use(adminAuth.Handle)
		r.Get("/", urlHandler.HandleAdmin())
		r.Post("/delete", urlHandler.HandleAdminDelete())
	})
	r.Get("/{urlID}", urlHandler.HandleGetURL())
	return r, nil
}

// InitServer returns a http.Server object ready to be listening and serving.
func InitServer(cfg *config.Config, processor shortener.Processor, log *zap.SugaredLogger) (*http.Server, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r, err := NewRouter(cfg, processor, reg, log)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      r,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}, nil
}
