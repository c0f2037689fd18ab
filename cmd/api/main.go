package main

import (
	"context"
	"log"

	fbauth "firebase.google.com/go/v4/auth"

	"github.com/geo3dhub/geo-hub-backend/config"
	"github.com/geo3dhub/geo-hub-backend/internal/auth"
	"github.com/geo3dhub/geo-hub-backend/internal/bootstrap"
	cronjob "github.com/geo3dhub/geo-hub-backend/internal/contractors/cron"
	contractorrepo "github.com/geo3dhub/geo-hub-backend/internal/contractors/repository"
	"github.com/geo3dhub/geo-hub-backend/internal/projects/planner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)
	ctx := context.Background()

	redisClient, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	pool, err := bootstrap.OpenDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer pool.Close()

	sqlDB, err := bootstrap.OpenSQL(&cfg.Database)
	if err != nil {
		log.Fatalf("postgres (contractors): %v", err)
	}
	defer sqlDB.Close()

	var authClient *fbauth.Client
	if cfg.Firebase.CredentialsPath != "" {
		authClient, err = auth.InitializeFirebase(&cfg.Firebase)
		if err != nil {
			log.Fatalf("firebase: %v", err)
		}
	}

	contractorRepo := contractorrepo.NewContractorRepository(sqlDB)
	poolCache := contractorrepo.NewPoolCache(redisClient, contractorRepo)

	scheduler := cronjob.NewScheduler(poolCache)
	scheduler.Start()
	go scheduler.RunOnce()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "geo-hub-backend",
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Redis:          redisClient,
		DB:             pool,
		Contractors:    contractorRepo,
		ContractorPool: poolCache,
		Auth:           authClient,
		Planner:        planner.NewClient(cfg.Planner.BaseURL),
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
