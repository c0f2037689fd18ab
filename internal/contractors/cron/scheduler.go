package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/geo3dhub/geo-hub-backend/internal/contractors/repository"
)

// Scheduler refreshes the cached contractor pool on a schedule so matching
// keeps serving warm data as contractors enroll or update their profiles.
type Scheduler struct {
	cache *repository.PoolCache
}

func NewScheduler(cache *repository.PoolCache) *Scheduler {
	return &Scheduler{cache: cache}
}

// Start initializes cron tasks
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	//  (12:00 AM)
	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.refreshPool()
	})

	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (refreshing contractor pool nightly at 12:00AM)")
	c.Start()
}

// RunOnce refreshes the pool immediately. Used at startup and by the
// standalone worker.
func (s *Scheduler) RunOnce() {
	s.refreshPool()
}

func (s *Scheduler) refreshPool() {
	log.Println("Contractor pool refresh started...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := s.cache.Refresh(ctx)
	if err != nil {
		log.Printf("Contractor pool refresh failed: %v", err)
		return
	}

	log.Printf("Contractor pool refresh completed: %d profiles cached at %s", len(pool), time.Now().Format(time.RFC1123))
}
