package main

import (
	"context"
	"log"

	"github.com/ArtTrips-25-26/art-trip-backend/config"
	"github.com/ArtTrips-25-26/art-trip-backend/internal/artwork"
	"github.com/ArtTrips-25-26/art-trip-backend/internal/bootstrap"
	"github.com/ArtTrips-25-26/art-trip-backend/internal/trips/repository"
)

const serviceName = "art-trip-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := bootstrap.OpenDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb, err := bootstrap.OpenRedis(context.Background(), &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	catalogClient := artwork.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.RequestTimeout)
	catalogCache := artwork.NewCache(catalogClient, rdb, cfg.Catalog.CacheTTL)

	refresher := artwork.NewRefresher(catalogCache, repository.NewPlaceRepository(db), cfg.Catalog.RefreshCron)
	if err := refresher.Start(); err != nil {
		log.Fatalf("refresher: %v", err)
	}
	defer refresher.Stop()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		AllowOrigins: cfg.Server.AllowOrigins,
		DB:           db,
		Redis:        rdb,
		Catalog:      catalogCache,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
