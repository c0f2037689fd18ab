package bootstrap

import (
	"log"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/geo3dhub/geo-hub-backend/internal/api/http"
	"github.com/geo3dhub/geo-hub-backend/internal/api/http/middleware"
	authmw "github.com/geo3dhub/geo-hub-backend/internal/auth/middleware"
	authrepo "github.com/geo3dhub/geo-hub-backend/internal/auth/repository"
	contractorhttp "github.com/geo3dhub/geo-hub-backend/internal/contractors/http"
	contractorrepo "github.com/geo3dhub/geo-hub-backend/internal/contractors/repository"
	matchinghttp "github.com/geo3dhub/geo-hub-backend/internal/matching/http"
	matchingservice "github.com/geo3dhub/geo-hub-backend/internal/matching/service"
	projecthttp "github.com/geo3dhub/geo-hub-backend/internal/projects/http"
	projectrepo "github.com/geo3dhub/geo-hub-backend/internal/projects/repository"
	projectservice "github.com/geo3dhub/geo-hub-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Redis          *redis.Client
	DB             *pgxpool.Pool
	Contractors    *contractorrepo.ContractorRepository
	ContractorPool *contractorrepo.PoolCache
	Auth           *fbauth.Client
	Planner        projectservice.PlannerClient
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis, dep.DB)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestIDMiddleware())

	if dep.Auth != nil {
		userRepo := authrepo.NewUserRepository(dep.DB)
		api.Use(authmw.FirebaseAuthMiddleware(dep.Auth, userRepo))
	} else {
		log.Println("Firebase auth disabled, requests run as the dev user")
		api.Use(devUserMiddleware())
	}

	projectRepo := projectrepo.NewProjectRepository(dep.Redis)
	projectSvc := projectservice.NewProjectService(projectRepo)
	roadmapSvc := projectservice.NewRoadmapService(projectRepo, dep.Planner)
	projecthttp.NewHandler(projectSvc, roadmapSvc).Register(api.Group("/projects"))

	contractorhttp.NewHandler(dep.Contractors).Register(api.Group("/contractors"))

	matchingSvc := matchingservice.NewMatchingService(dep.ContractorPool)
	matchinghttp.NewHandler(matchingSvc).Register(api.Group("/matching"))

	return r
}

// devUserMiddleware stands in for Firebase auth in local development.
func devUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetHeader("X-Debug-User")
		if uid == "" {
			uid = "dev-user"
		}
		c.Set("firebase_uid", uid)
		c.Next()
	}
}
