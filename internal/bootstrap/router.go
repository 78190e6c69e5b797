package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/ArtTrips-25-26/art-trip-backend/internal/api/http"
	"github.com/ArtTrips-25-26/art-trip-backend/internal/api/http/middleware"
	"github.com/ArtTrips-25-26/art-trip-backend/internal/artwork"
	triphttp "github.com/ArtTrips-25-26/art-trip-backend/internal/trips/http"
	"github.com/ArtTrips-25-26/art-trip-backend/internal/trips/repository"
	"github.com/ArtTrips-25-26/art-trip-backend/internal/trips/service"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	AllowOrigins []string
	DB           *sql.DB
	Redis        *redis.Client
	Catalog      *artwork.Cache
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = dep.AllowOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Request-Id")
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	projectRepo := repository.NewProjectRepository(dep.DB)
	placeRepo := repository.NewPlaceRepository(dep.DB)

	locks := service.NewProjectLocks()
	projectService := service.NewProjectService(projectRepo, placeRepo, dep.Catalog, locks)
	placeService := service.NewPlaceService(projectRepo, placeRepo, dep.Catalog, locks)

	api := r.Group("/api/v1")
	triphttp.Register(api.Group("/projects"), projectService, placeService)

	return r
}
