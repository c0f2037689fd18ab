package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contractorrepo "github.com/geo3dhub/geo-hub-backend/internal/contractors/repository"
	"github.com/geo3dhub/geo-hub-backend/internal/matching"
)

// setupTestPostgres creates a test PostgreSQL connection.
// Skips the test if TEST_DB_DSN (or the TEST_DB_* variables) are not set.
func setupTestPostgres(t *testing.T) *sql.DB {
	dsn := os.Getenv("TEST_DB_DSN")

	if dsn == "" {
		host := os.Getenv("TEST_DB_HOST")
		port := os.Getenv("TEST_DB_PORT")
		user := os.Getenv("TEST_DB_USER")
		password := os.Getenv("TEST_DB_PASSWORD")
		dbname := os.Getenv("TEST_DB_NAME")

		if host != "" && port != "" && user != "" && dbname != "" {
			dsn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
				host, port, user, password, dbname)
		} else {
			t.Skip("TEST_DB_DSN or TEST_DB_* environment variables not set, skipping PostgreSQL integration test")
		}
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	require.NoError(t, db.Ping())
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestContractorRepository_ListAndCache(t *testing.T) {
	db := setupTestPostgres(t)
	redisClient := setupTestRedis(t)
	ctx := context.Background()

	repo := contractorrepo.NewContractorRepository(db)
	pool, err := repo.List(ctx)
	require.NoError(t, err)

	for _, p := range pool {
		assert.NotEmpty(t, p.ID)
		assert.NotNil(t, p.Skills, "missing skills must come back as an empty set")
	}

	cache := contractorrepo.NewPoolCache(redisClient, repo)
	warmed, err := cache.Refresh(ctx)
	require.NoError(t, err)
	assert.Len(t, warmed, len(pool))

	// A cache hit returns the same pool in the same order.
	cached, err := cache.Pool(ctx)
	require.NoError(t, err)
	require.Len(t, cached, len(pool))
	for i := range pool {
		assert.Equal(t, pool[i].ID, cached[i].ID)
	}

	// And the filter over the cached pool stays deterministic.
	req := matching.Requirement{}
	assert.Equal(t, matching.Filter(cached, req), matching.Filter(cached, req))
}
