package bootstrap

import (
	"database/sql"

	"github.com/ArtTrips-25-26/art-trip-backend/config"
	"github.com/ArtTrips-25-26/art-trip-backend/internal/storage/postgres"
)

func OpenDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	return postgres.NewConnection(cfg)
}
