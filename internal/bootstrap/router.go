package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/radar-hub/techradar-backend/internal/api/http"
	"github.com/radar-hub/techradar-backend/internal/middleware"
	radarhttp "github.com/radar-hub/techradar-backend/internal/radar/http"
	"github.com/radar-hub/techradar-backend/internal/radar/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Radar          *service.RadarService
	Cache          *redis.Client
	RateLimitRPS   int
	RateLimitBurst int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	// The visualization frontend is a browser app on another origin.
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Cache)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestID())
	if dep.RateLimitRPS > 0 {
		api.Use(middleware.RateLimit(float64(dep.RateLimitRPS), dep.RateLimitBurst))
	}

	radarHandler := radarhttp.New(dep.Radar)
	radarHandler.Register(api)

	return r
}
