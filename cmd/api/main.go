package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radar-hub/techradar-backend/config"
	"github.com/radar-hub/techradar-backend/internal/bootstrap"
	"github.com/radar-hub/techradar-backend/internal/radar/cache"
	cronjob "github.com/radar-hub/techradar-backend/internal/radar/cron"
	"github.com/radar-hub/techradar-backend/internal/radar/repository"
	"github.com/radar-hub/techradar-backend/internal/radar/service"
)

const serviceName = "techradar-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	var redisClient *redis.Client
	var snapshots *cache.SnapshotCache
	if cfg.Redis.Addr != "" {
		redisClient, err = bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		defer redisClient.Close()

		snapshots = cache.NewSnapshotCache(redisClient, time.Duration(cfg.Redis.SnapshotTTL)*time.Second)
	} else {
		log.Println("REDIS_ADDR not set, radar snapshot cache disabled")
	}

	svc := service.NewRadarService(service.Deps{
		Technologies: repository.NewTechnologyRepository(),
		Quadrants:    repository.NewQuadrantRepository(),
		Rings:        repository.NewRingRepository(),
		Projects:     repository.NewProjectRepository(),
		Links:        repository.NewTechnologyProjectRepository(),
		Snapshots:    snapshots,
	})
	svc.Seed(ctx)

	if snapshots != nil {
		sched := cronjob.NewScheduler(svc, cfg.Redis.RefreshSpec)
		if err := sched.Start(); err != nil {
			log.Printf("snapshot refresher disabled: %v", err)
		} else {
			defer sched.Stop()
		}
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    serviceName,
		Version:        cfg.App.Version,
		Radar:          svc,
		Cache:          redisClient,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
