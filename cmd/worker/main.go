package main

import (
	"context"
	"log"
	"os"

	"github.com/geo3dhub/geo-hub-backend/config"
	"github.com/geo3dhub/geo-hub-backend/internal/bootstrap"
	cronjob "github.com/geo3dhub/geo-hub-backend/internal/contractors/cron"
	contractorrepo "github.com/geo3dhub/geo-hub-backend/internal/contractors/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	redisClient, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	sqlDB, err := bootstrap.OpenSQL(&cfg.Database)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer sqlDB.Close()

	repo := contractorrepo.NewContractorRepository(sqlDB)
	scheduler := cronjob.NewScheduler(contractorrepo.NewPoolCache(redisClient, repo))

	if len(os.Args) > 1 && os.Args[1] == "refresh-pool" {
		scheduler.RunOnce()
		return
	}

	scheduler.Start()
	scheduler.RunOnce()
	select {}
}
