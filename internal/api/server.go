package api

import (
	"context"
	"fmt"
	"log"

	"labor-planner/internal/api/handler"
	"labor-planner/internal/catalog"
	"labor-planner/internal/config"
	"labor-planner/internal/session"
	"labor-planner/internal/store"
	"labor-planner/pkg/router"
)

// NewCatalogSource returns the catalog reader selected by cfg.
func NewCatalogSource(cfg config.Config, db *store.DB) catalog.Source {
	if cfg.Catalog.Source == config.CatalogSourceHTTP {
		return catalog.NewHTTPSource(cfg.Catalog.BaseURL, cfg.CatalogTimeout())
	}
	return catalog.StoreSource{DB: db}
}

func NewHandler(cfg config.Config, db *store.DB) *handler.Handler {
	return &handler.Handler{
		Store:              db,
		Catalog:            NewCatalogSource(cfg, db),
		CatalogConcurrency: cfg.Catalog.Concurrency,
		Corrections:        cfg.Corrections(),
		Support:            cfg.SupportPolicy(),
		Guard:              session.NewGuard(),
	}
}

// Serve opens the catalog database and serves the API until ctx is cancelled.
func Serve(ctx context.Context, cfg config.Config) error {
	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("init DB: %w", err)
	}
	defer db.Close()

	r := router.New()
	RegisterRoutes(r, NewHandler(cfg, db))
	log.Printf("📚 Catalog source: %s", cfg.Catalog.Source)

	return r.Start(ctx, cfg.Server.Addr, router.ServerOptions{
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	})
}
